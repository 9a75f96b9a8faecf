package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"zellige/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeDocumentRepo struct {
	docs      []bson.M
	inserted  []any
	createErr error
	getErr    error
}

func (f *fakeDocumentRepo) CreateDocument(ctx context.Context, collection string, doc any) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.inserted = append(f.inserted, doc)
	return primitive.NewObjectID().Hex(), nil
}

func (f *fakeDocumentRepo) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.docs, nil
}

func (f *fakeDocumentRepo) ListCollectionNames(ctx context.Context, limit int) ([]string, error) {
	return []string{"booking"}, nil
}

func validIntake() models.BookingIntake {
	return models.BookingIntake{
		Name:    "Amine",
		Phone:   "0612345678",
		Service: "cut",
	}
}

// TestCreateBooking_Valid tests that a valid intake persists with a
// server-assigned creation timestamp
func TestCreateBooking_Valid(t *testing.T) {
	repo := &fakeDocumentRepo{}
	svc := &DefaultBookingService{Repo: repo}

	id, err := svc.CreateBooking(context.Background(), validIntake())

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, repo.inserted, 1)

	rec, ok := repo.inserted[0].(models.Booking)
	require.True(t, ok)
	assert.Equal(t, "Amine", rec.Name)
	assert.Equal(t, "cut", rec.Service)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), rec.CreatedAt, 5*time.Second)
}

// TestCreateBooking_Invalid tests field-level validation failures
func TestCreateBooking_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BookingIntake)
		field  string
	}{
		{"missing name", func(in *models.BookingIntake) { in.Name = "" }, "name"},
		{"missing phone", func(in *models.BookingIntake) { in.Phone = "" }, "phone"},
		{"short phone", func(in *models.BookingIntake) { in.Phone = "061" }, "phone"},
		{"missing service", func(in *models.BookingIntake) { in.Service = "" }, "service"},
		{"bad email", func(in *models.BookingIntake) { in.Email = "not-an-email" }, "email"},
		{"bad date", func(in *models.BookingIntake) { in.PreferredDate = "next tuesday" }, "preferreddate"},
		{"bad time", func(in *models.BookingIntake) { in.PreferredTime = "2pm" }, "preferredtime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeDocumentRepo{}
			svc := &DefaultBookingService{Repo: repo}

			in := validIntake()
			tt.mutate(&in)

			_, err := svc.CreateBooking(context.Background(), in)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			assert.Empty(t, repo.inserted, "nothing must be persisted on validation failure")
		})
	}
}

// TestCreateBooking_NoStore tests the store-less runtime state
func TestCreateBooking_NoStore(t *testing.T) {
	svc := &DefaultBookingService{}

	_, err := svc.CreateBooking(context.Background(), validIntake())

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
}

// TestCreateBooking_StoreError tests write failure mapping
func TestCreateBooking_StoreError(t *testing.T) {
	repo := &fakeDocumentRepo{createErr: errors.New("connection reset")}
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.CreateBooking(context.Background(), validIntake())

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.ErrorContains(t, perr, "connection reset")
}

// TestListBookings_SortsDescending tests ordering by created_at with
// malformed records pushed to the end
func TestListBookings_SortsDescending(t *testing.T) {
	older := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	repo := &fakeDocumentRepo{docs: []bson.M{
		{"_id": primitive.NewObjectID(), "name": "old", "created_at": older},
		{"_id": primitive.NewObjectID(), "name": "undated"},
		{"_id": primitive.NewObjectID(), "name": "new", "created_at": primitive.NewDateTimeFromTime(newer)},
	}}
	svc := &DefaultBookingService{Repo: repo}

	items, err := svc.ListBookings(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "new", items[0]["name"])
	assert.Equal(t, "old", items[1]["name"])
	assert.Equal(t, "undated", items[2]["name"], "records without created_at sort last")

	for _, item := range items {
		id, ok := item["id"].(string)
		assert.True(t, ok)
		assert.NotEmpty(t, id)
	}
	assert.Equal(t, "2025-06-01T09:00:00Z", items[0]["created_at"])
}

// TestListBookings_Empty tests the empty store
func TestListBookings_Empty(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeDocumentRepo{}}

	items, err := svc.ListBookings(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
}

// TestListBookings_StoreError tests read failure mapping
func TestListBookings_StoreError(t *testing.T) {
	repo := &fakeDocumentRepo{getErr: errors.New("no reachable servers")}
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.ListBookings(context.Background())

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
}

// TestListBookings_NoStore tests the store-less runtime state
func TestListBookings_NoStore(t *testing.T) {
	svc := &DefaultBookingService{}

	_, err := svc.ListBookings(context.Background())

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
}

// TestCreateThenList_RoundTrip tests that a created booking shows up in a
// subsequent listing with its submitted fields intact
func TestCreateThenList_RoundTrip(t *testing.T) {
	repo := &fakeDocumentRepo{}
	svc := &DefaultBookingService{Repo: repo}

	in := validIntake()
	in.Notes = "fade on the sides"
	_, err := svc.CreateBooking(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, repo.inserted, 1)

	// Feed the stored form back, the way the driver would return it.
	raw, err := bson.Marshal(repo.inserted[0])
	require.NoError(t, err)
	var stored bson.M
	require.NoError(t, bson.Unmarshal(raw, &stored))
	stored["_id"] = primitive.NewObjectID()
	repo.docs = []bson.M{stored}

	items, err := svc.ListBookings(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Amine", items[0]["name"])
	assert.Equal(t, "cut", items[0]["service"])
	assert.Equal(t, "fade on the sides", items[0]["notes"])
	assert.IsType(t, "", items[0]["id"])
	assert.IsType(t, "", items[0]["created_at"], "timestamp must serialize to a string")
}
