package pos

import (
	"strings"

	"restaurant-pos-api/models"
	"restaurant-pos-api/statemachine"
	"restaurant-pos-api/storage"

	"github.com/google/uuid"
)

// Tables returns all tables.
func (s *Service) Tables() []models.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadTables()
}

// Table returns one table by id.
func (s *Service) Table(id string) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tables := s.loadTables()
	i := findTable(tables, id)
	if i < 0 {
		return models.Table{}, ErrTableNotFound
	}
	return tables[i], nil
}

// AddTable creates a new available table with the next display number and the
// default four seats.
func (s *Service) AddTable() (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := s.loadTables()
	number := 0
	for _, t := range tables {
		if t.Number > number {
			number = t.Number
		}
	}
	table := models.Table{
		ID:     uuid.NewString(),
		Number: number + 1,
		Seats:  4,
		Status: models.StatusAvailable,
	}
	tables = append(tables, table)
	if err := s.store.Save(storage.KeyTables, tables); err != nil {
		return models.Table{}, err
	}
	return table, nil
}

// UpdateTable directly overwrites a table from the management form. Number,
// seats, status, and customer are taken as given; no derived fields change.
func (s *Service) UpdateTable(updated models.Table) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := s.loadTables()
	i := findTable(tables, updated.ID)
	if i < 0 {
		return models.Table{}, ErrTableNotFound
	}
	tables[i].Number = updated.Number
	tables[i].Seats = updated.Seats
	tables[i].Status = updated.Status
	tables[i].Customer = updated.Customer
	if err := s.store.Save(storage.KeyTables, tables); err != nil {
		return models.Table{}, err
	}
	return tables[i], nil
}

// DeleteTable removes a table permanently. History records are independent
// snapshots and are not touched.
func (s *Service) DeleteTable(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := s.loadTables()
	i := findTable(tables, id)
	if i < 0 {
		return ErrTableNotFound
	}
	tables = append(tables[:i], tables[i+1:]...)
	return s.store.Save(storage.KeyTables, tables)
}

// Occupy seats a named party at the table and assigns a fresh table-scoped
// order id. Existing order items, if any, are kept.
func (s *Service) Occupy(id, customer string) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(customer) == "" {
		return models.Table{}, ErrCustomerRequired
	}
	tables := s.loadTables()
	i := findTable(tables, id)
	if i < 0 {
		return models.Table{}, ErrTableNotFound
	}
	next, err := statemachine.Apply(statemachine.ActionOccupy, tables[i].Status)
	if err != nil {
		return models.Table{}, err
	}
	tables[i].Status = next
	tables[i].Customer = customer
	tables[i].OrderID = s.ids.GenerateForTable(tables[i].Number)
	if err := s.store.Save(storage.KeyTables, tables); err != nil {
		return models.Table{}, err
	}
	return tables[i], nil
}

// Reserve marks the table reserved for a named party and stamps the
// reservation time.
func (s *Service) Reserve(id, customer string) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(customer) == "" {
		return models.Table{}, ErrCustomerRequired
	}
	tables := s.loadTables()
	i := findTable(tables, id)
	if i < 0 {
		return models.Table{}, ErrTableNotFound
	}
	next, err := statemachine.Apply(statemachine.ActionReserve, tables[i].Status)
	if err != nil {
		return models.Table{}, err
	}
	now := s.now()
	tables[i].Status = next
	tables[i].Customer = customer
	tables[i].ReservationTime = &now
	if err := s.store.Save(storage.KeyTables, tables); err != nil {
		return models.Table{}, err
	}
	return tables[i], nil
}

// Free returns the table to available. Refused while the table still has
// order items: the operator must complete or cancel the order first.
func (s *Service) Free(id string) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := s.loadTables()
	i := findTable(tables, id)
	if i < 0 {
		return models.Table{}, ErrTableNotFound
	}
	if tables[i].HasOpenOrder() {
		return models.Table{}, ErrTableHasOpenOrder
	}
	next, err := statemachine.Apply(statemachine.ActionFree, tables[i].Status)
	if err != nil {
		return models.Table{}, err
	}
	tables[i].Status = next
	clearOrderFields(&tables[i])
	if err := s.store.Save(storage.KeyTables, tables); err != nil {
		return models.Table{}, err
	}
	return tables[i], nil
}

func findTable(tables []models.Table, id string) int {
	for i, t := range tables {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func clearOrderFields(t *models.Table) {
	t.Customer = ""
	t.OrderID = ""
	t.OrderItems = nil
	t.OrderTotal = nil
	t.ReservationTime = nil
}
