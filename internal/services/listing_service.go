package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Vivek9939947227/Asprints-Aada/internal/models"
	"github.com/Vivek9939947227/Asprints-Aada/internal/store"
)

// IListingService is the state manager for the property and inquiry
// collections. It owns both collections in memory, enforces the identity and
// ownership invariants, mediates all mutations and exposes the derived views
// the finder/owner surfaces render. The persistent store holds a serialized
// mirror with no independent authority: it is hydrated once at construction
// and written through (debounced) after every mutation.
type IListingService interface {
	AddProperty(p models.Property)
	ToggleAvailability(id string)
	DeleteProperty(id string)
	AddInquiry(i models.Inquiry)
	ListForFinder() []models.Property
	ListForOwner(ownerID string) []models.Property
	InquiriesForOwner(ownerID string) []models.Inquiry
	SearchByText(query, city string) []models.Property
	ApplyAIResultSet(ids []string) []models.Property
	FindPropertyByID(id string) (*models.Property, bool)
	AddImageToProperty(id, imageRef string) bool
	AllProperties() []models.Property
	Close() error
}

// CityFilterAll disables the city constraint in SearchByText.
const CityFilterAll = "All"

// listingService implements IListingService. Mutations are serialized by the
// mutex; no mutation is ever observable half-applied.
type listingService struct {
	mu         sync.RWMutex
	properties []models.Property
	inquiries  []models.Inquiry

	store    store.Store
	debounce time.Duration

	syncMu          sync.Mutex
	propertiesTimer *time.Timer
	inquiriesTimer  *time.Timer
	closed          bool
}

// NewListingService hydrates the collections from the store and returns the
// state manager. A missing or corrupt property blob falls back to the seed
// dataset; a missing or corrupt inquiry blob falls back to an empty
// collection. Neither condition is fatal.
func NewListingService(ctx context.Context, st store.Store, debounce time.Duration) IListingService {
	s := &listingService{store: st, debounce: debounce}

	properties, err := st.LoadProperties(ctx)
	switch {
	case err == nil:
		s.properties = properties
	case errors.Is(err, store.ErrNotFound):
		s.properties = models.SeedProperties()
	default:
		log.Printf("WARN: discarding stored property collection: %v", err)
		s.properties = models.SeedProperties()
	}

	inquiries, err := st.LoadInquiries(ctx)
	switch {
	case err == nil:
		s.inquiries = inquiries
	case errors.Is(err, store.ErrNotFound):
		s.inquiries = nil
	default:
		log.Printf("WARN: discarding stored inquiry collection: %v", err)
		s.inquiries = nil
	}

	return s
}

// AddProperty prepends the listing so the newest one renders first.
// Validation is the submitting form's responsibility.
func (s *listingService) AddProperty(p models.Property) {
	s.mu.Lock()
	s.properties = append([]models.Property{p}, s.properties...)
	s.mu.Unlock()
	s.syncProperties()
}

// ToggleAvailability flips the availability flag of the matching listing.
// An unknown id is a silent no-op.
func (s *listingService) ToggleAvailability(id string) {
	s.mu.Lock()
	changed := false
	for i := range s.properties {
		if s.properties[i].ID == id {
			s.properties[i].IsAvailable = !s.properties[i].IsAvailable
			changed = true
			break
		}
	}
	s.mu.Unlock()
	if changed {
		s.syncProperties()
	}
}

// DeleteProperty removes the matching listing outright. There is no
// tombstone and no cascade: inquiries referencing the listing keep their
// propertyId and simply drop out of owner views. An unknown id is a no-op.
func (s *listingService) DeleteProperty(id string) {
	s.mu.Lock()
	changed := false
	kept := s.properties[:0]
	for _, p := range s.properties {
		if p.ID == id {
			changed = true
			continue
		}
		kept = append(kept, p)
	}
	s.properties = kept
	s.mu.Unlock()
	if changed {
		s.syncProperties()
	}
}

// AddInquiry prepends the inquiry. The AI analysis must already be populated
// by the caller; the state manager never talks to the oracle itself.
func (s *listingService) AddInquiry(i models.Inquiry) {
	s.mu.Lock()
	s.inquiries = append([]models.Inquiry{i}, s.inquiries...)
	s.mu.Unlock()
	s.syncInquiries()
}

// ListForFinder returns the available listings in storage order.
func (s *listingService) ListForFinder() []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Property, 0, len(s.properties))
	for _, p := range s.properties {
		if p.IsAvailable {
			result = append(result, p)
		}
	}
	return result
}

// ListForOwner returns the listings created by the given owner.
func (s *listingService) ListForOwner(ownerID string) []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []models.Property
	for _, p := range s.properties {
		if p.OwnerID == ownerID {
			result = append(result, p)
		}
	}
	return result
}

// InquiriesForOwner returns the inquiries whose referenced listing still
// exists and belongs to the given owner. An inquiry whose listing has been
// deleted is unreachable here, not an error.
func (s *listingService) InquiriesForOwner(ownerID string) []models.Inquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byID := make(map[string]*models.Property, len(s.properties))
	for i := range s.properties {
		byID[s.properties[i].ID] = &s.properties[i]
	}
	var result []models.Inquiry
	for _, inq := range s.inquiries {
		p, ok := byID[inq.PropertyID]
		if ok && p.OwnerID == ownerID {
			result = append(result, inq)
		}
	}
	return result
}

// SearchByText filters by case-insensitive substring match against title,
// city and nearby hubs, ANDed with an exact city filter. An empty query
// disables the text constraint; CityFilterAll disables the city constraint.
func (s *listingService) SearchByText(query, city string) []models.Property {
	q := strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Property, 0, len(s.properties))
	for _, p := range s.properties {
		if city != CityFilterAll && city != "" && p.City != city {
			continue
		}
		if q != "" && !matchesQuery(&p, q) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func matchesQuery(p *models.Property, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.City), q) {
		return true
	}
	for _, hub := range p.NearbyHubs {
		if strings.Contains(strings.ToLower(hub), q) {
			return true
		}
	}
	return false
}

// ApplyAIResultSet restricts the collection to the given ids, preserving
// canonical storage order rather than the oracle's ranking.
func (s *listingService) ApplyAIResultSet(ids []string) []models.Property {
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Property, 0, len(ids))
	for _, p := range s.properties {
		if _, ok := idSet[p.ID]; ok {
			result = append(result, p)
		}
	}
	return result
}

// FindPropertyByID returns a copy of the matching listing.
func (s *listingService) FindPropertyByID(id string) (*models.Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.properties {
		if p.ID == id {
			cp := p
			return &cp, true
		}
	}
	return nil, false
}

// AddImageToProperty appends a processed image reference to the listing.
// Returns false when the listing no longer exists (e.g. deleted while the
// photo task was in flight).
func (s *listingService) AddImageToProperty(id, imageRef string) bool {
	s.mu.Lock()
	found := false
	for i := range s.properties {
		if s.properties[i].ID == id {
			s.properties[i].Images = append(s.properties[i].Images, imageRef)
			found = true
			break
		}
	}
	s.mu.Unlock()
	if found {
		s.syncProperties()
	}
	return found
}

// AllProperties returns every listing regardless of availability (admin
// table view).
func (s *listingService) AllProperties() []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Property, len(s.properties))
	copy(result, s.properties)
	return result
}

// --- write-through sync ---

// syncProperties rewrites the property blob, debounced so bursts of
// mutations collapse into one serialization.
func (s *listingService) syncProperties() {
	s.scheduleSync(&s.propertiesTimer, s.flushProperties)
}

func (s *listingService) syncInquiries() {
	s.scheduleSync(&s.inquiriesTimer, s.flushInquiries)
}

func (s *listingService) scheduleSync(timer **time.Timer, flush func()) {
	if s.debounce <= 0 {
		flush()
		return
	}
	s.syncMu.Lock()
	defer s.syncMu.Unlock()
	if s.closed {
		return
	}
	if *timer != nil {
		(*timer).Stop()
	}
	*timer = time.AfterFunc(s.debounce, flush)
}

func (s *listingService) flushProperties() {
	s.mu.RLock()
	snapshot := make([]models.Property, len(s.properties))
	copy(snapshot, s.properties)
	s.mu.RUnlock()
	if err := s.store.SaveProperties(context.Background(), snapshot); err != nil {
		log.Printf("WARN: property mirror write failed: %v", err)
	}
}

func (s *listingService) flushInquiries() {
	s.mu.RLock()
	snapshot := make([]models.Inquiry, len(s.inquiries))
	copy(snapshot, s.inquiries)
	s.mu.RUnlock()
	if err := s.store.SaveInquiries(context.Background(), snapshot); err != nil {
		log.Printf("WARN: inquiry mirror write failed: %v", err)
	}
}

// Close stops pending debounce timers and performs a final flush of both
// collections.
func (s *listingService) Close() error {
	s.syncMu.Lock()
	s.closed = true
	if s.propertiesTimer != nil {
		s.propertiesTimer.Stop()
	}
	if s.inquiriesTimer != nil {
		s.inquiriesTimer.Stop()
	}
	s.syncMu.Unlock()

	s.flushProperties()
	s.flushInquiries()
	return nil
}
