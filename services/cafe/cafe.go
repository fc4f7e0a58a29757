// Package cafe owns the product catalog, the order ledger and the
// aggregates derived from it. Every mutator reads the full collection,
// applies one change and writes the full collection back; that is the
// only write primitive the store offers and it fits the data scale of a
// single café.
package cafe

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hamzadaoud/rouge-perle-gestion/models"
	"github.com/hamzadaoud/rouge-perle-gestion/services/identity"
	"github.com/hamzadaoud/rouge-perle-gestion/store"
)

var (
	// ErrNotAuthorized rejects admin-only operations invoked without the
	// admin role.
	ErrNotAuthorized = errors.New("operation requires admin role")

	// ErrEmptyOrder rejects order submission with no items.
	ErrEmptyOrder = errors.New("order has no items")

	// ErrNoOpenTimeLog signals a clock-out with no open record today.
	ErrNoOpenTimeLog = errors.New("no open time log for today")
)

// TopProductLimit caps the top-selling ranking.
const TopProductLimit = 10

// Service is the catalog, order ledger and time ledger over an injected
// store. The mutex serializes read-modify-write cycles; the store has
// no transactions, so concurrent HTTP handlers would otherwise lose
// writes.
type Service struct {
	mu       sync.Mutex
	store    store.Store
	identity *identity.Service
	now      func() time.Time
}

func New(s store.Store, id *identity.Service) *Service {
	return &Service{store: s, identity: id, now: time.Now}
}

// SetClock overrides the time source. Tests only.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// ensureSeed initializes absent collections. The drinks seed is applied
// only when the key does not exist at all; an existing empty catalog is
// left alone.
func (s *Service) ensureSeed() error {
	for _, key := range []string{store.KeyDrinks, store.KeyOrders, store.KeyTimeLogs} {
		_, found, err := s.store.Raw(key)
		if err != nil {
			return err
		}
		if found {
			continue
		}
		var value any
		if key == store.KeyDrinks {
			value = models.SeedDrinks()
		} else {
			value = []any{}
		}
		if err := s.store.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) loadDrinks() ([]models.Drink, error) {
	if err := s.ensureSeed(); err != nil {
		return nil, err
	}
	var drinks []models.Drink
	if _, err := s.store.Get(store.KeyDrinks, &drinks); err != nil {
		return nil, err
	}
	return drinks, nil
}

// Drinks returns the catalog, seeding it first if the key is absent.
func (s *Service) Drinks() ([]models.Drink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadDrinks()
}

// AddDrink appends a product and returns the resulting catalog. An
// empty id gets a fresh unique one.
func (s *Service) AddDrink(drink models.Drink) ([]models.Drink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drinks, err := s.loadDrinks()
	if err != nil {
		return nil, err
	}
	if drink.ID == "" {
		drink.ID = newID("drink")
	}
	drinks = append(drinks, drink)
	if err := s.store.Set(store.KeyDrinks, drinks); err != nil {
		return nil, err
	}
	s.identity.RegisterActivity(fmt.Sprintf("A ajouté le produit %s", drink.Name))
	return drinks, nil
}

// UpdateDrink replaces the entry whose id matches. An unknown id leaves
// the catalog unchanged and records nothing.
func (s *Service) UpdateDrink(drink models.Drink) ([]models.Drink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drinks, err := s.loadDrinks()
	if err != nil {
		return nil, err
	}
	for i := range drinks {
		if drinks[i].ID == drink.ID {
			drinks[i] = drink
			if err := s.store.Set(store.KeyDrinks, drinks); err != nil {
				return nil, err
			}
			s.identity.RegisterActivity(fmt.Sprintf("A modifié le produit %s", drink.Name))
			break
		}
	}
	return drinks, nil
}

// DeleteDrink removes the entry whose id matches. An unknown id is a
// silent no-op.
func (s *Service) DeleteDrink(id string) ([]models.Drink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drinks, err := s.loadDrinks()
	if err != nil {
		return nil, err
	}
	for i := range drinks {
		if drinks[i].ID == id {
			removed := drinks[i]
			drinks = append(drinks[:i], drinks[i+1:]...)
			if err := s.store.Set(store.KeyDrinks, drinks); err != nil {
				return nil, err
			}
			s.identity.RegisterActivity(fmt.Sprintf("A supprimé le produit %s", removed.Name))
			break
		}
	}
	return drinks, nil
}

func (s *Service) loadOrders() ([]models.Order, error) {
	if err := s.ensureSeed(); err != nil {
		return nil, err
	}
	var orders []models.Order
	if _, err := s.store.Get(store.KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Orders returns the full order ledger, oldest first.
func (s *Service) Orders() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadOrders()
}

// Order looks up one ledger entry by id.
func (s *Service) Order(id string) (*models.Order, error) {
	orders, err := s.Orders()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil
}

// CreateOrder submits the cart as one immutable ledger entry. Requires
// an active session and at least one item.
func (s *Service) CreateOrder(items []models.OrderItem) (*models.Order, error) {
	user := s.identity.CurrentUser()
	if user == nil {
		return nil, identity.ErrNotAuthenticated
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range items {
		total += item.LineTotal()
	}

	order := models.Order{
		ID:        newID("order"),
		Items:     items,
		Total:     total,
		Date:      s.now(),
		AgentID:   user.ID,
		AgentName: user.Name,
		Completed: true,
	}

	orders, err := s.loadOrders()
	if err != nil {
		return nil, err
	}
	orders = append(orders, order)
	if err := s.store.Set(store.KeyOrders, orders); err != nil {
		return nil, err
	}
	s.identity.RegisterActivity(fmt.Sprintf("A créé une commande de %.2f€", total))
	return &order, nil
}

// Revenues groups the order ledger by UTC calendar day and sums totals,
// most recent day first. Recomputed from scratch on every call; the
// ledger fits in memory.
func (s *Service) Revenues() ([]models.Revenue, error) {
	orders, err := s.Orders()
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]float64)
	for _, order := range orders {
		byDay[dayOf(order.Date)] += order.Total
	}

	revenues := make([]models.Revenue, 0, len(byDay))
	for day, amount := range byDay {
		revenues = append(revenues, models.Revenue{Date: day, Amount: amount})
	}
	sort.Slice(revenues, func(i, j int) bool {
		return revenues[i].Date > revenues[j].Date
	})
	return revenues, nil
}

// RevenuesBetween filters Revenues to an inclusive day range. Empty
// bounds are open-ended.
func (s *Service) RevenuesBetween(from, to string) ([]models.Revenue, error) {
	revenues, err := s.Revenues()
	if err != nil {
		return nil, err
	}
	filtered := revenues[:0]
	for _, r := range revenues {
		if from != "" && r.Date < from {
			continue
		}
		if to != "" && r.Date > to {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}

// TopSellingProducts ranks drinks by quantity sold across all orders,
// capped at TopProductLimit. Ties keep first-seen ledger order.
func (s *Service) TopSellingProducts() ([]models.TopProduct, error) {
	orders, err := s.Orders()
	if err != nil {
		return nil, err
	}

	byDrink := make(map[string]*models.TopProduct)
	var seen []string
	for _, order := range orders {
		for _, item := range order.Items {
			p, ok := byDrink[item.DrinkID]
			if !ok {
				p = &models.TopProduct{DrinkID: item.DrinkID, Name: item.DrinkName}
				byDrink[item.DrinkID] = p
				seen = append(seen, item.DrinkID)
			}
			p.Quantity += item.Quantity
			p.Revenue += item.LineTotal()
		}
	}

	products := make([]models.TopProduct, 0, len(seen))
	for _, id := range seen {
		products = append(products, *byDrink[id])
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Quantity > products[j].Quantity
	})
	if len(products) > TopProductLimit {
		products = products[:TopProductLimit]
	}
	return products, nil
}

// ClearAllActivities wipes both audit collections. Admin only; the
// closing audit entry becomes the first record of the emptied log.
func (s *Service) ClearAllActivities() error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(store.KeyActivities); err != nil {
		return err
	}
	if err := s.store.Delete(store.KeyLoginActivities); err != nil {
		return err
	}
	s.identity.RegisterActivity("A vidé le journal d'activités")
	return nil
}

// ClearAllSystemData wipes orders, time logs and both audit collections
// and restores the seed catalog. The roster itself is untouched; users
// are not stored in the mutable store.
func (s *Service) ClearAllSystemData() error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{store.KeyOrders, store.KeyTimeLogs, store.KeyActivities, store.KeyLoginActivities} {
		if err := s.store.Delete(key); err != nil {
			return err
		}
	}
	if err := s.store.Set(store.KeyDrinks, models.SeedDrinks()); err != nil {
		return err
	}
	if err := s.store.Set(store.KeyOrders, []models.Order{}); err != nil {
		return err
	}
	if err := s.store.Set(store.KeyTimeLogs, []models.TimeLog{}); err != nil {
		return err
	}
	s.identity.RegisterActivity("A réinitialisé les données du système")
	return nil
}

func (s *Service) requireAdmin() error {
	user := s.identity.CurrentUser()
	if user == nil {
		return identity.ErrNotAuthenticated
	}
	if !user.IsAdmin() {
		return ErrNotAuthorized
	}
	return nil
}

func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// dayOf truncates a timestamp to its UTC calendar day, matching how the
// day string is computed at write time everywhere else. Recomputing
// from local time on read would drift across day boundaries.
func dayOf(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
