package services_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"ouest.xdoubleu.com/apps/ouest/internal/mocks"
	"ouest.xdoubleu.com/apps/ouest/internal/models"
	"ouest.xdoubleu.com/apps/ouest/internal/repositories"
	"ouest.xdoubleu.com/apps/ouest/internal/services"
)

func newServices(source repositories.Source, now time.Time) *services.Services {
	return newServicesWithLogger(logging.NewNopLogger(), source, now)
}

func newServicesWithLogger(
	logger *slog.Logger,
	source repositories.Source,
	now time.Time,
) *services.Services {
	return services.New(
		logger,
		repositories.New(source),
		func() time.Time { return now },
		time.UTC,
		services.NewLocaleService("fr"),
	)
}

func schedule() models.Schedule {
	return models.Schedule{
		Events: []models.Event{
			{Start: models.NewDate(2024, time.January, 1), LocationKey: "rennes"},
			{Start: models.NewDate(2024, time.February, 1), LocationKey: "brest"},
		},
		Locations: map[string]models.Location{
			"rennes": {Name: "Rennes"},
			"brest":  {Name: "Brest"},
		},
	}
}

func TestToday(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.Nil(t, err)

	now := time.Date(2024, time.January, 31, 23, 30, 0, 0, time.UTC)
	svc := services.New(
		logging.NewNopLogger(),
		repositories.New(mocks.NewMockSource(schedule())),
		func() time.Time { return now },
		paris,
		services.NewLocaleService("fr"),
	)

	assert.Equal(t, models.NewDate(2024, time.February, 1), svc.Schedule.Today())

	current, err := svc.Schedule.Current(context.Background())
	require.Nil(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "brest", current.LocationKey)
}

func TestCurrent(t *testing.T) {
	now := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	svc := newServices(mocks.NewMockSource(schedule()), now)

	current, err := svc.Schedule.Current(context.Background())
	require.Nil(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Rennes", current.Name)
	require.NotNil(t, current.End)
	assert.Equal(t, models.NewDate(2024, time.February, 1), *current.End)
}

func TestCurrentNone(t *testing.T) {
	now := time.Date(2023, time.December, 31, 12, 0, 0, 0, time.UTC)
	svc := newServices(mocks.NewMockSource(schedule()), now)

	current, err := svc.Schedule.Current(context.Background())
	assert.Nil(t, err)
	assert.Nil(t, current)
}

func TestCurrentLoadError(t *testing.T) {
	source := mocks.NewMockSource(schedule())
	source.Fail(errors.New("disk on fire"))
	svc := newServices(source, time.Now())

	current, err := svc.Schedule.Current(context.Background())
	assert.Nil(t, current)
	assert.True(t, errors.Is(err, models.ErrLoad))

	_, err = svc.Schedule.Timeline(context.Background())
	assert.True(t, errors.Is(err, models.ErrLoad))

	err = svc.Schedule.Validate(context.Background())
	assert.True(t, errors.Is(err, models.ErrLoad))
}

func TestCurrentKeepsLoadError(t *testing.T) {
	loadErr := models.NewLoadError(errors.New("bad file"))
	source := mocks.NewMockSource(schedule())
	source.Fail(loadErr)
	svc := newServices(source, time.Now())

	_, err := svc.Schedule.Current(context.Background())
	assert.Same(t, loadErr, err)
}

func TestCurrentUndefinedLocation(t *testing.T) {
	broken := schedule()
	delete(broken.Locations, "rennes")

	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	svc := newServices(mocks.NewMockSource(broken), now)

	current, err := svc.Schedule.Current(context.Background())
	assert.Nil(t, current)
	assert.True(t, errors.Is(err, models.ErrUndefinedLocation))
}

func TestCurrentReloadsEveryCall(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	source := mocks.NewMockSource(schedule())
	svc := newServices(source, now)

	current, err := svc.Schedule.Current(context.Background())
	require.Nil(t, err)
	assert.Equal(t, "rennes", current.LocationKey)

	source.Set(models.Schedule{
		Events: []models.Event{
			{Start: models.NewDate(2024, time.January, 10), LocationKey: "brest"},
		},
		Locations: schedule().Locations,
	})

	current, err = svc.Schedule.Current(context.Background())
	require.Nil(t, err)
	assert.Equal(t, "brest", current.LocationKey)
}

func TestValidate(t *testing.T) {
	svc := newServices(mocks.NewMockSource(schedule()), time.Now())
	assert.Nil(t, svc.Schedule.Validate(context.Background()))

	broken := schedule()
	broken.Events = append(
		broken.Events,
		models.Event{Start: models.NewDate(2024, time.March, 1), LocationKey: "x"},
		models.Event{Start: models.NewDate(2024, time.April, 1), LocationKey: "x"},
		models.Event{Start: models.NewDate(2024, time.May, 1), LocationKey: "y"},
	)
	svc = newServices(mocks.NewMockSource(broken), time.Now())

	err := svc.Schedule.Validate(context.Background())
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, models.ErrUndefinedLocation))
	assert.Equal(t, "undefined location: \"x\"\nundefined location: \"y\"", err.Error())
}
