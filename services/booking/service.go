package booking

import (
	"context"
	"errors"
	"sort"
	"time"

	documentsRepo "zellige/database/repository/documents"
	"zellige/models"
	"zellige/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	// bookingCollection is the document collection holding bookings.
	bookingCollection = "booking"
	// listLimit bounds how many recent bookings a listing fetches.
	listLimit = 200
	// storeTimeout bounds every store round-trip.
	storeTimeout = 5 * time.Second
)

// DefaultBookingService is the production BookingService. Repo may be nil
// when the process started without a reachable store; every operation then
// fails with a PersistenceError instead of crashing the process.
type DefaultBookingService struct {
	Repo   documentsRepo.DocumentRepository
	Logger *zap.Logger
}

// CreateBooking validates the intake against the canonical schema, stamps
// the creation time and persists the record. The store assigns the ID.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, intake models.BookingIntake) (string, error) {
	rec := models.FromIntake(intake)
	if err := validateBooking(rec); err != nil {
		return "", err
	}

	if s.Repo == nil {
		return "", &PersistenceError{Op: "create booking", Err: errors.New("document store is not available")}
	}

	rec.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	id, err := s.Repo.CreateDocument(ctx, bookingCollection, rec)
	if err != nil {
		return "", &PersistenceError{Op: "create booking", Err: err}
	}

	s.logger().Info("booking created",
		zap.String("id", id),
		zap.String("service", rec.Service),
	)
	return id, nil
}

// ListBookings fetches the most recent bookings, serializes each document
// and orders them by created_at descending. Records missing created_at
// compare as the empty string and therefore sort after all dated records.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]map[string]any, error) {
	if s.Repo == nil {
		return nil, &PersistenceError{Op: "list bookings", Err: errors.New("document store is not available")}
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	docs, err := s.Repo.GetDocuments(ctx, bookingCollection, bson.M{}, listLimit)
	if err != nil {
		return nil, &PersistenceError{Op: "list bookings", Err: err}
	}

	items := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		items = append(items, utils.SerializeDocument(doc))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return createdAtKey(items[i]) > createdAtKey(items[j])
	})
	return items, nil
}

func createdAtKey(item map[string]any) string {
	if v, ok := item["created_at"].(string); ok {
		return v
	}
	return ""
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
