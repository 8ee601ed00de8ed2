package service

import (
	"context"

	"seating-planner-backend/internal/database/models"
	apperrors "seating-planner-backend/internal/errors"
	"seating-planner-backend/internal/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// SeatedGuest is the short form of a guest shown at a table
type SeatedGuest struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// TableWithGuests is a table together with the guests seated at it
type TableWithGuests struct {
	models.Table
	Guests    []SeatedGuest `json:"guests"`
	FreeSeats int           `json:"free_seats"`
}

// IsFull reports whether no seat is left
func (t *TableWithGuests) IsFull() bool {
	return len(t.Guests) >= t.Capacity
}

// SeatingChart is the table-by-table view of a guest list plus everyone not seated
type SeatingChart struct {
	Tables     []TableWithGuests `json:"tables"`
	Unassigned []models.Guest    `json:"unassigned"`
}

// Table returns the chart entry of a table, or nil
func (c *SeatingChart) Table(id uuid.UUID) *TableWithGuests {
	for i := range c.Tables {
		if c.Tables[i].ID == id {
			return &c.Tables[i]
		}
	}
	return nil
}

// BuildSeatingChart groups guests under the tables they reference. Tables keep
// their input order, guests keep theirs within each table. A guest with no
// table, or with a reference to a table not in tables, is unassigned.
func BuildSeatingChart(guests []models.Guest, tables []models.Table) *SeatingChart {
	chart := &SeatingChart{
		Tables:     make([]TableWithGuests, len(tables)),
		Unassigned: []models.Guest{},
	}
	index := make(map[uuid.UUID]int, len(tables))
	for i, table := range tables {
		chart.Tables[i] = TableWithGuests{Table: table, Guests: []SeatedGuest{}}
		index[table.ID] = i
	}

	for _, guest := range guests {
		if !guest.IsSeated() {
			chart.Unassigned = append(chart.Unassigned, guest)
			continue
		}
		i, ok := index[*guest.TableID]
		if !ok {
			chart.Unassigned = append(chart.Unassigned, guest)
			continue
		}
		chart.Tables[i].Guests = append(chart.Tables[i].Guests, SeatedGuest{
			ID:        guest.ID,
			FirstName: guest.FirstName,
			LastName:  guest.LastName,
		})
	}

	for i := range chart.Tables {
		free := chart.Tables[i].Capacity - len(chart.Tables[i].Guests)
		if free < 0 {
			free = 0
		}
		chart.Tables[i].FreeSeats = free
	}
	return chart
}

// SeatingService builds seating charts and moves guests between tables
type SeatingService struct {
	guests GuestServiceInterface
	tables TableServiceInterface
}

// NewSeatingService creates a new seating service
func NewSeatingService(guests GuestServiceInterface, tables TableServiceInterface) *SeatingService {
	return &SeatingService{guests: guests, tables: tables}
}

// Chart loads guests and tables concurrently and builds the chart
func (s *SeatingService) Chart(ctx context.Context, actor Actor) (*SeatingChart, error) {
	var (
		guests []models.Guest
		tables []models.Table
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		guests, err = s.guests.List(gctx, actor, GuestFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		tables, err = s.tables.List(gctx, actor)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return BuildSeatingChart(guests, tables), nil
}

// Assign seats a guest at a table. A full table rejects the guest without
// touching it; the store repeats the capacity check under a lock. Seating a
// guest at the table they already sit at changes nothing.
func (s *SeatingService) Assign(ctx context.Context, actor Actor, guestID, tableID uuid.UUID) (*SeatingChart, error) {
	if err := requireOrganizer(actor); err != nil {
		return nil, err
	}

	chart, err := s.Chart(ctx, actor)
	if err != nil {
		return nil, err
	}
	table := chart.Table(tableID)
	if table == nil {
		return nil, apperrors.ErrTableNotFound
	}
	guest := findSeatedGuest(chart, guestID)
	if guest == nil {
		return nil, apperrors.ErrGuestNotFound
	}
	if guest.TableID != nil && *guest.TableID == tableID {
		return chart, nil
	}
	if table.IsFull() {
		return nil, apperrors.NewCapacityExceededError(table.Name, table.Capacity)
	}

	if _, err := s.guests.Update(ctx, actor, guestID, &UpdateGuestRequest{TableID: &tableID}); err != nil {
		return nil, err
	}
	logger.WithContext(ctx).Infof("guest %s seated at table %q", guestID, table.Name)
	return s.Chart(ctx, actor)
}

// Unassign clears a guest's seat
func (s *SeatingService) Unassign(ctx context.Context, actor Actor, guestID uuid.UUID) (*SeatingChart, error) {
	if err := requireOrganizer(actor); err != nil {
		return nil, err
	}

	noTable := uuid.Nil
	if _, err := s.guests.Update(ctx, actor, guestID, &UpdateGuestRequest{TableID: &noTable}); err != nil {
		return nil, err
	}
	return s.Chart(ctx, actor)
}

// findSeatedGuest looks a guest up among unassigned guests and table seats.
// Seated guests only carry their short form in the chart, so the result for
// them holds ID, names and TableID.
func findSeatedGuest(chart *SeatingChart, id uuid.UUID) *models.Guest {
	for i := range chart.Unassigned {
		if chart.Unassigned[i].ID == id {
			return &chart.Unassigned[i]
		}
	}
	for _, table := range chart.Tables {
		for _, seated := range table.Guests {
			if seated.ID == id {
				tableID := table.ID
				return &models.Guest{
					OwnedModel: models.OwnedModel{BaseModel: models.BaseModel{ID: seated.ID}},
					FirstName:  seated.FirstName,
					LastName:   seated.LastName,
					TableID:    &tableID,
				}
			}
		}
	}
	return nil
}
