package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vivek9939947227/Asprints-Aada/internal/models"
	"github.com/Vivek9939947227/Asprints-Aada/internal/store"
)

func newTestService(t *testing.T) (IListingService, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	svc := NewListingService(context.Background(), st, 0)
	t.Cleanup(func() { _ = svc.Close() })
	return svc, st
}

func sampleProperty(id, ownerID string) models.Property {
	return models.Property{
		ID:          id,
		Title:       "Listing " + id,
		Type:        models.PropertyTypePG,
		Location:    "Indra Vihar",
		City:        "Kota",
		Price:       models.DerivePriceTable(9000),
		OwnerID:     ownerID,
		OwnerName:   "Owner " + ownerID,
		IsAvailable: true,
		NearbyHubs:  []string{"Allen Samarth"},
	}
}

func TestNewListingService_SeedsWhenEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	all := svc.AllProperties()
	require.Len(t, all, 3)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "3", all[2].ID)
}

func TestNewListingService_HydratesStoredOrder(t *testing.T) {
	st := store.NewMemory()
	stored := []models.Property{sampleProperty("a", "o1"), sampleProperty("b", "o2")}
	require.NoError(t, st.SaveProperties(context.Background(), stored))

	svc := NewListingService(context.Background(), st, 0)
	defer svc.Close()

	all := svc.AllProperties()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
}

func TestNewListingService_CorruptBlobFallsBackToSeed(t *testing.T) {
	st := store.NewMemory()
	st.PutRaw(store.KeyProperties, []byte("{definitely not json"))
	st.PutRaw(store.KeyInquiries, []byte("also garbage"))

	svc := NewListingService(context.Background(), st, 0)
	defer svc.Close()

	assert.Len(t, svc.AllProperties(), 3)
	assert.Empty(t, svc.InquiriesForOwner("seed-owner-1"))
}

func TestAddProperty_PrependsAndDerivedPricesStick(t *testing.T) {
	svc, st := newTestService(t)

	svc.AddProperty(sampleProperty("new", "o1"))

	all := svc.AllProperties()
	require.Len(t, all, 4)
	assert.Equal(t, "new", all[0].ID)

	p, ok := svc.FindPropertyByID("new")
	require.True(t, ok)
	assert.Equal(t, 600, p.Price.Day)
	assert.Equal(t, 2250, p.Price.Week)
	assert.Equal(t, 9000, p.Price.Month)
	assert.Equal(t, 99000, p.Price.Year)

	// Write-through with zero debounce is immediate
	stored, err := st.LoadProperties(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 4)
	assert.Equal(t, "new", stored[0].ID)
}

func TestToggleAvailability(t *testing.T) {
	svc, _ := newTestService(t)

	svc.ToggleAvailability("1")
	p, ok := svc.FindPropertyByID("1")
	require.True(t, ok)
	assert.False(t, p.IsAvailable)

	svc.ToggleAvailability("1")
	p, _ = svc.FindPropertyByID("1")
	assert.True(t, p.IsAvailable)
}

func TestToggleAvailability_UnknownIDIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)

	before := svc.AllProperties()
	svc.ToggleAvailability("does-not-exist")
	assert.Equal(t, before, svc.AllProperties())
}

func TestDeleteProperty(t *testing.T) {
	svc, st := newTestService(t)

	svc.DeleteProperty("2")

	assert.Len(t, svc.AllProperties(), 2)
	_, ok := svc.FindPropertyByID("2")
	assert.False(t, ok)

	stored, err := st.LoadProperties(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	// Unknown id is a no-op
	svc.DeleteProperty("2")
	assert.Len(t, svc.AllProperties(), 2)
}

func TestDeleteProperty_LeavesInquiriesDangling(t *testing.T) {
	svc, _ := newTestService(t)

	svc.AddInquiry(models.Inquiry{ID: "i1", PropertyID: "1", PropertyName: "Listing 1", SenderName: "Ravi", Message: "Interested"})
	require.Len(t, svc.InquiriesForOwner("seed-owner-1"), 1)

	svc.DeleteProperty("1")

	// The inquiry is not cascaded away, it just drops out of owner views
	assert.Empty(t, svc.InquiriesForOwner("seed-owner-1"))
}

func TestAddInquiry_PrependsNewest(t *testing.T) {
	svc, st := newTestService(t)

	svc.AddInquiry(models.Inquiry{ID: "i1", PropertyID: "1"})
	svc.AddInquiry(models.Inquiry{ID: "i2", PropertyID: "1"})

	inquiries := svc.InquiriesForOwner("seed-owner-1")
	require.Len(t, inquiries, 2)
	assert.Equal(t, "i2", inquiries[0].ID)
	assert.Equal(t, "i1", inquiries[1].ID)

	stored, err := st.LoadInquiries(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestInquiriesForOwner_ScopedByListingOwnership(t *testing.T) {
	svc, _ := newTestService(t)

	svc.AddInquiry(models.Inquiry{ID: "i1", PropertyID: "1"})
	svc.AddInquiry(models.Inquiry{ID: "i2", PropertyID: "2"})

	assert.Len(t, svc.InquiriesForOwner("seed-owner-1"), 1)
	assert.Len(t, svc.InquiriesForOwner("seed-owner-2"), 1)
	assert.Empty(t, svc.InquiriesForOwner("someone-else"))
}

func TestListForFinder_ExcludesUnavailable(t *testing.T) {
	svc, _ := newTestService(t)

	svc.ToggleAvailability("2")

	finder := svc.ListForFinder()
	require.Len(t, finder, 2)
	for _, p := range finder {
		assert.NotEqual(t, "2", p.ID)
	}
}

func TestListForOwner(t *testing.T) {
	svc, _ := newTestService(t)

	svc.AddProperty(sampleProperty("x1", "seed-owner-1"))

	mine := svc.ListForOwner("seed-owner-1")
	require.Len(t, mine, 2)
	assert.Equal(t, "x1", mine[0].ID)
	assert.Equal(t, "1", mine[1].ID)
}

func TestSearchByText(t *testing.T) {
	svc, _ := newTestService(t)

	// Case-insensitive title match
	assert.Len(t, svc.SearchByText("LUXURY", "All"), 1)
	// Nearby hub match
	assert.Len(t, svc.SearchByText("hansraj", "All"), 1)
	// City name as free text
	assert.Len(t, svc.SearchByText("kota", "All"), 1)
	// City filter alone
	assert.Len(t, svc.SearchByText("", "Delhi"), 1)
	// Query and city filter are ANDed
	assert.Empty(t, svc.SearchByText("Luxury", "Delhi"))
	// Empty query and the All sentinel return everything
	assert.Len(t, svc.SearchByText("", "All"), 3)
	assert.Len(t, svc.SearchByText("", ""), 3)
	// No matches
	assert.Empty(t, svc.SearchByText("zzzzz", "All"))
}

func TestApplyAIResultSet_PreservesCanonicalOrder(t *testing.T) {
	svc, _ := newTestService(t)

	// Oracle order is ignored; storage order wins
	result := svc.ApplyAIResultSet([]string{"3", "1"})
	require.Len(t, result, 2)
	assert.Equal(t, "1", result[0].ID)
	assert.Equal(t, "3", result[1].ID)

	// Unknown ids are dropped silently
	result = svc.ApplyAIResultSet([]string{"nope", "2"})
	require.Len(t, result, 1)
	assert.Equal(t, "2", result[0].ID)

	assert.Empty(t, svc.ApplyAIResultSet(nil))
}

func TestAddImageToProperty(t *testing.T) {
	svc, _ := newTestService(t)

	ok := svc.AddImageToProperty("1", "uploads/new.jpg")
	require.True(t, ok)

	p, _ := svc.FindPropertyByID("1")
	assert.Contains(t, p.Images, "uploads/new.jpg")

	assert.False(t, svc.AddImageToProperty("gone", "uploads/x.jpg"))
}

func TestFindPropertyByID_ReturnsCopy(t *testing.T) {
	svc, _ := newTestService(t)

	p, ok := svc.FindPropertyByID("1")
	require.True(t, ok)
	p.Title = "mutated"

	fresh, _ := svc.FindPropertyByID("1")
	assert.NotEqual(t, "mutated", fresh.Title)
}

func TestDebouncedSync_CoalescesAndFlushesOnClose(t *testing.T) {
	st := store.NewMemory()
	svc := NewListingService(context.Background(), st, time.Hour)

	svc.AddProperty(sampleProperty("a", "o1"))
	svc.AddProperty(sampleProperty("b", "o1"))

	// Debounce window still open, nothing written yet
	_, err := st.LoadProperties(context.Background())
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, svc.Close())

	stored, err := st.LoadProperties(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 5)
	assert.Equal(t, "b", stored[0].ID)
}
