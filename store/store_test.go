package store

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beesaferoot/property-leasing/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Options{Driver: SQLite, DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func d(s string) models.Date { return models.MustParseDate(s) }

func mustClient(t *testing.T, s *Store, name string) *models.Client {
	t.Helper()
	c, err := models.NewClient(name, name+"@example.com", "", "", "")
	require.NoError(t, err)
	_, err = s.SaveClient(context.Background(), c)
	require.NoError(t, err)
	return c
}

func mustProperty(t *testing.T, s *Store, details models.Details) *models.Property {
	t.Helper()
	p, err := models.NewProperty(models.PropertySpec{
		Address:    "12 Harbour Road",
		FloorArea:  120,
		RentAmount: decimal.NewFromInt(1000),
		RentPeriod: models.Monthly,
	}, details)
	require.NoError(t, err)
	_, err = s.SaveProperty(context.Background(), p)
	require.NoError(t, err)
	return p
}

func newRental(c *models.Client, p *models.Property, status models.RentalStatus) *models.Rental {
	return &models.Rental{
		ClientID:         c.ID,
		PropertyID:       p.ID,
		StartDate:        d("2024-01-15"),
		EndDate:          d("2024-03-20"),
		DurationMonths:   3,
		TotalAmount:      decimal.NewFromInt(3000),
		PaymentMethod:    models.BankTransfer,
		PaymentFrequency: models.Monthly,
		NextDueDate:      d("2024-02-15"),
		Status:           status,
	}
}

func newPayment(c *models.Client, p *models.Property, nextDue string) *models.Payment {
	return &models.Payment{
		ClientID:   c.ID,
		PropertyID: &p.ID,
		Amount:     decimal.NewFromInt(1000),
		PaidOn:     d("2024-01-15"),
		Frequency:  models.Monthly,
		NextDue:    d(nextDue),
	}
}

func TestSaveAndGetProperty(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	p := mustProperty(t, s, models.Residential{Kind: "Apartment", Bedrooms: 2, Bathrooms: 1})
	require.NotZero(t, p.ID)

	got, err := s.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryResidential, got.Category)
	assert.Equal(t, "Apartment", *got.Kind)
	assert.Equal(t, 2, *got.Bedrooms)
	assert.Nil(t, got.LandUse)
	assert.Nil(t, got.Amenities)
	assert.Nil(t, got.Capacity)
	assert.True(t, got.Available)
	assert.True(t, decimal.NewFromInt(1000).Equal(got.RentAmount))
	assert.Equal(t, models.Residential{Kind: "Apartment", Bedrooms: 2, Bathrooms: 1}, got.Details())
}

func TestSavePropertyUpdatesInPlace(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	p := mustProperty(t, s, models.Land{LandUse: "Agricultural"})
	id := p.ID
	p.Available = false
	p.Description = "fenced"

	got, err := s.SaveProperty(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	reloaded, err := s.GetProperty(ctx, id)
	require.NoError(t, err)
	assert.False(t, reloaded.Available)
	assert.Equal(t, "fenced", reloaded.Description)

	all, err := s.QueryProperties(ctx, PropertyFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSaveRejectsInvalidProperty(t *testing.T) {
	s := setupTestStore(t)
	p := &models.Property{Category: models.CategoryLand, RentPeriod: models.Monthly, Kind: strPtr("Plot")}

	_, err := s.SaveProperty(context.Background(), p)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUnknownIDsAreReferenceErrors(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.GetClient(ctx, 42)
	assert.ErrorIs(t, err, models.ErrReference)
	_, err = s.GetProperty(ctx, 42)
	assert.ErrorIs(t, err, models.ErrReference)
	_, err = s.GetRental(ctx, 42)
	assert.ErrorIs(t, err, models.ErrReference)

	_, err = s.SaveClient(ctx, &models.Client{ID: 42, Name: "Ghost"})
	var refErr *models.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "client", refErr.Entity)
	assert.Equal(t, uint(42), refErr.ID)
}

func TestSaveRentalChecksReferences(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	c := mustClient(t, s, "ada")
	p := mustProperty(t, s, models.Commercial{Kind: "Office"})

	dangling := newRental(c, p, models.RentalActive)
	dangling.PropertyID = p.ID + 100
	_, err := s.SaveRental(ctx, dangling)
	assert.ErrorIs(t, err, models.ErrReference)

	dangling = newRental(c, p, models.RentalActive)
	dangling.ClientID = c.ID + 100
	_, err = s.SaveRental(ctx, dangling)
	assert.ErrorIs(t, err, models.ErrReference)

	rentals, err := s.QueryRentalsForClient(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, rentals)

	id, err := s.SaveRental(ctx, newRental(c, p, models.RentalActive))
	require.NoError(t, err)

	got, err := s.GetRental(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-20", got.EndDate.String())
	assert.Equal(t, "ada", got.Client.Name)
	assert.Equal(t, "Office", *got.Property.Kind)
	assert.False(t, got.CreatedDate.IsZero())
}

func TestSavePaymentChecksReferences(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	c := mustClient(t, s, "ada")
	p := mustProperty(t, s, models.Commercial{Kind: "Office"})

	pay := newPayment(c, p, "2024-02-15")
	missing := p.ID + 9
	pay.PropertyID = &missing
	_, err := s.SavePayment(ctx, pay)
	assert.ErrorIs(t, err, models.ErrReference)

	pay = newPayment(c, p, "2024-02-15")
	pay.PropertyID = nil
	_, err = s.SavePayment(ctx, pay)
	require.NoError(t, err)
	assert.NotEmpty(t, pay.Reference)
}

func TestQueryPropertiesFilter(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	venue := mustProperty(t, s, models.Venue{Kind: "Hall", Capacity: 300})
	mustProperty(t, s, models.Commercial{Kind: "Shop"})
	office := mustProperty(t, s, models.Commercial{Kind: "Office"})
	office.Available = false
	_, err := s.SaveProperty(ctx, office)
	require.NoError(t, err)

	byID, err := s.QueryProperties(ctx, PropertyFilter{})
	require.NoError(t, err)
	require.Len(t, byID, 3)
	assert.Equal(t, venue.ID, byID[0].ID)

	byCategory, err := s.QueryProperties(ctx, PropertyFilter{OrderBy: OrderByCategory})
	require.NoError(t, err)
	require.Len(t, byCategory, 3)
	assert.Equal(t, "Office", *byCategory[0].Kind)
	assert.Equal(t, "Shop", *byCategory[1].Kind)
	assert.Equal(t, models.CategoryVenues, byCategory[2].Category)

	available, err := s.QueryProperties(ctx, PropertyFilter{Category: models.CategoryCommercial, AvailableOnly: true})
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "Shop", *available[0].Kind)
}

func TestQueryClientsPreloadsRentals(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	bob := mustClient(t, s, "bob")
	mustClient(t, s, "ada")
	p := mustProperty(t, s, models.Resort{Kind: "Lodge", Amenities: "Pool"})

	_, err := s.SaveRental(ctx, newRental(bob, p, models.RentalActive))
	require.NoError(t, err)

	clients, err := s.QueryClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "ada", clients[0].Name)
	assert.Empty(t, clients[0].Rentals)
	require.Len(t, clients[1].Rentals, 1)
	assert.Equal(t, "Pool", *clients[1].Rentals[0].Property.Amenities)
}

func TestDueQueries(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	c := mustClient(t, s, "ada")
	p := mustProperty(t, s, models.Commercial{Kind: "Office"})
	q := mustProperty(t, s, models.Commercial{Kind: "Shop"})

	due := newRental(c, p, models.RentalActive)
	_, err := s.SaveRental(ctx, due)
	require.NoError(t, err)
	later := newRental(c, q, models.RentalActive)
	later.NextDueDate = d("2024-06-01")
	later.EndDate = d("2024-12-31")
	_, err = s.SaveRental(ctx, later)
	require.NoError(t, err)
	ended := newRental(c, q, models.RentalEnded)
	_, err = s.SaveRental(ctx, ended)
	require.NoError(t, err)

	rentals, err := s.QueryDueRentals(ctx, d("2024-03-01"))
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, due.ID, rentals[0].ID)
	assert.Equal(t, "ada", rentals[0].Client.Name)

	expired, err := s.QueryExpiredRentals(ctx, d("2024-04-01"))
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, due.ID, expired[0].ID)

	active, err := s.QueryActiveRentals(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	_, err = s.SavePayment(ctx, newPayment(c, p, "2024-02-15"))
	require.NoError(t, err)
	_, err = s.SavePayment(ctx, newPayment(c, q, "2024-02-01"))
	require.NoError(t, err)
	_, err = s.SavePayment(ctx, newPayment(c, q, "2024-05-01"))
	require.NoError(t, err)

	payments, err := s.QueryDuePayments(ctx, d("2024-02-15"))
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "2024-02-01", payments[0].NextDue.String())
	assert.Equal(t, "2024-02-15", payments[1].NextDue.String())
	assert.Equal(t, "Office", *payments[1].Property.Kind)
}

func TestDeleteProperty(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	c := mustClient(t, s, "ada")
	p := mustProperty(t, s, models.Commercial{Kind: "Office"})

	active := newRental(c, p, models.RentalActive)
	_, err := s.SaveRental(ctx, active)
	require.NoError(t, err)
	_, err = s.SavePayment(ctx, newPayment(c, p, "2024-02-15"))
	require.NoError(t, err)

	err = s.DeleteProperty(ctx, p.ID)
	assert.ErrorIs(t, err, models.ErrConflict)
	_, err = s.GetProperty(ctx, p.ID)
	require.NoError(t, err)

	active.Status = models.RentalEnded
	_, err = s.SaveRental(ctx, active)
	require.NoError(t, err)

	require.NoError(t, s.DeleteProperty(ctx, p.ID))
	_, err = s.GetProperty(ctx, p.ID)
	assert.ErrorIs(t, err, models.ErrReference)

	payments, err := s.QueryDuePayments(ctx, d("2099-01-01"))
	require.NoError(t, err)
	assert.Empty(t, payments)
	rentals, err := s.QueryRentalsForClient(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, rentals)

	assert.ErrorIs(t, s.DeleteProperty(ctx, p.ID), models.ErrReference)
}

func TestInTxRollsBack(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.InTx(ctx, func(g Gateway) error {
		c, err := models.NewClient("ada", "", "", "", "")
		require.NoError(t, err)
		if _, err := g.SaveClient(ctx, c); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	clients, err := s.QueryClients(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=1", withForeignKeys(":memory:"))
	assert.Equal(t, "file:x.db?cache=shared&_foreign_keys=1", withForeignKeys("file:x.db?cache=shared"))
	assert.Equal(t, "x.db?_fk=1", withForeignKeys("x.db?_fk=1"))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(Options{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)
}

func strPtr(s string) *string { return &s }
