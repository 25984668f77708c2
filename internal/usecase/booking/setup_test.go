package booking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/barberbook/barberbook-api/internal/audit"
	"github.com/barberbook/barberbook-api/internal/db"
	"github.com/barberbook/barberbook-api/internal/infra/repository"
	"github.com/barberbook/barberbook-api/internal/models"
)

// testEnv seeds one shop with a staff member working Mon-Fri 09:00-17:00 and
// a 30-minute haircut service. 2024-06-10 is a Monday.
type testEnv struct {
	db      *gorm.DB
	repo    *repository.BookingGormRepository
	audit   *audit.Dispatcher
	profile models.BarberProfile
	staff   models.Staff
	service models.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// One named in-memory database per test keeps state isolated while
	// letting gorm's pool share the same connection.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Migrate(gdb))

	barber := models.Barber{Email: "owner@fadefactory.test", PasswordHash: "x"}
	require.NoError(t, gdb.Create(&barber).Error)

	profile := models.BarberProfile{
		BarberID: barber.ID,
		ShopName: "Fade Factory",
		Slug:     "fade-factory",
		City:     "Berlin",
		Currency: "EUR",
		Locale:   "en",
		Timezone: "Europe/Berlin",
	}
	require.NoError(t, gdb.Create(&profile).Error)

	staff := models.Staff{ProfileID: profile.ID, Name: "Marko", Active: true}
	require.NoError(t, gdb.Create(&staff).Error)

	for day := 1; day <= 5; day++ {
		window := models.StaffAvailability{
			StaffID:   staff.ID,
			DayOfWeek: day,
			StartTime: "09:00",
			EndTime:   "17:00",
		}
		require.NoError(t, gdb.Create(&window).Error)
	}

	service := models.Service{
		ProfileID:   profile.ID,
		Name:        "Haircut",
		DurationMin: 30,
		Price:       15,
		Active:      true,
	}
	require.NoError(t, gdb.Create(&service).Error)

	return &testEnv{
		db:      gdb,
		repo:    repository.NewBookingGormRepository(gdb),
		audit:   audit.NewDispatcher(audit.New(gdb)),
		profile: profile,
		staff:   staff,
		service: service,
	}
}

// otherTenant adds a second shop so cross-tenant checks have something to
// miss against.
func (e *testEnv) otherTenant(t *testing.T) models.BarberProfile {
	t.Helper()

	barber := models.Barber{Email: "other@shop.test", PasswordHash: "x"}
	require.NoError(t, e.db.Create(&barber).Error)

	profile := models.BarberProfile{
		BarberID: barber.ID,
		ShopName: "Other Shop",
		Slug:     "other-shop",
		City:     "Skopje",
		Currency: "EUR",
		Locale:   "en",
		Timezone: "Europe/Berlin",
	}
	require.NoError(t, e.db.Create(&profile).Error)
	return profile
}
