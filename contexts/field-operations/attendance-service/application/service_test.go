package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fieldops/contexts/field-operations/attendance-service/adapters/memory"
	domainerrors "fieldops/contexts/field-operations/attendance-service/domain/errors"
)

type stepClock struct {
	current time.Time
}

func (c *stepClock) Now() time.Time {
	c.current = c.current.Add(time.Minute)
	return c.current
}

type seqIDGen struct {
	next int
}

func (g *seqIDGen) NewID(context.Context) (string, error) {
	g.next++
	return fmt.Sprintf("att-%03d", g.next), nil
}

type staticLocator struct {
	lat, lng float64
	located  bool
}

func (l staticLocator) GetProjectLocation(context.Context, string) (float64, float64, bool, error) {
	return l.lat, l.lng, l.located, nil
}

func newTestService(locator staticLocator) Service {
	store := memory.NewStore()
	return Service{
		Repo:    store,
		Locator: locator,
		Clock:   &stepClock{current: time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)},
		IDGen:   &seqIDGen{},
	}
}

func TestCheckInInsideGeofence(t *testing.T) {
	service := newTestService(staticLocator{lat: 24.7136, lng: 46.6753, located: true})
	ctx := context.Background()

	attendance, err := service.CheckIn(ctx, "project-1", "user-1", CheckInInput{
		Lat:       24.7146, // ~110m north
		Lng:       46.6753,
		SelfieRef: "selfies/u1.jpg",
	})
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if attendance.Date != "2026-03-01" {
		t.Fatalf("unexpected date %q", attendance.Date)
	}
	if attendance.CheckInSelfieRef != "selfies/u1.jpg" {
		t.Fatalf("selfie ref not stored: %+v", attendance)
	}
	if attendance.CheckOutAt != nil {
		t.Fatalf("fresh check-in should have no check-out")
	}
}

func TestCheckInOutsideGeofenceRejected(t *testing.T) {
	service := newTestService(staticLocator{lat: 24.7136, lng: 46.6753, located: true})

	_, err := service.CheckIn(context.Background(), "project-1", "user-1", CheckInInput{
		Lat: 24.7236, // ~1.1km north
		Lng: 46.6753,
	})
	if !errors.Is(err, domainerrors.ErrOutsideGeofence) {
		t.Fatalf("expected ErrOutsideGeofence, got %v", err)
	}
}

func TestCheckInSkipsGeofenceWithoutCoordinates(t *testing.T) {
	service := newTestService(staticLocator{located: false})

	if _, err := service.CheckIn(context.Background(), "project-1", "user-1", CheckInInput{
		Lat: -33.8688, // nowhere near any site
		Lng: 151.2093,
	}); err != nil {
		t.Fatalf("project without coordinates should accept any position: %v", err)
	}
}

func TestCheckInDisabledGeofence(t *testing.T) {
	service := newTestService(staticLocator{lat: 24.7136, lng: 46.6753, located: true})
	service.GeofenceDisabled = true

	if _, err := service.CheckIn(context.Background(), "project-1", "user-1", CheckInInput{
		Lat: 0,
		Lng: 0,
	}); err != nil {
		t.Fatalf("disabled geofence should accept any position: %v", err)
	}
}

func TestDoubleCheckInRejected(t *testing.T) {
	service := newTestService(staticLocator{located: false})
	ctx := context.Background()

	if _, err := service.CheckIn(ctx, "project-1", "user-1", CheckInInput{}); err != nil {
		t.Fatalf("first CheckIn: %v", err)
	}
	if _, err := service.CheckIn(ctx, "project-1", "user-1", CheckInInput{}); !errors.Is(err, domainerrors.ErrAlreadyCheckedIn) {
		t.Fatalf("expected ErrAlreadyCheckedIn, got %v", err)
	}
}

func TestCheckOutRules(t *testing.T) {
	service := newTestService(staticLocator{located: false})
	ctx := context.Background()

	if _, err := service.CheckOut(ctx, "project-1", "user-1", CheckOutInput{}); !errors.Is(err, domainerrors.ErrCheckInRequired) {
		t.Fatalf("check-out without check-in: expected ErrCheckInRequired, got %v", err)
	}

	checkedIn, err := service.CheckIn(ctx, "project-1", "user-1", CheckInInput{})
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	checkedOut, err := service.CheckOut(ctx, "project-1", "user-1", CheckOutInput{Lat: 1, Lng: 2, SelfieRef: "selfies/out.jpg"})
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if checkedOut.CheckOutAt == nil || !checkedOut.CheckOutAt.After(checkedIn.CheckInAt) {
		t.Fatalf("check-out timestamp not set after check-in: %+v", checkedOut)
	}
	if checkedOut.CheckOutLat == nil || *checkedOut.CheckOutLat != 1 {
		t.Fatalf("check-out position not stored: %+v", checkedOut)
	}

	if _, err := service.CheckOut(ctx, "project-1", "user-1", CheckOutInput{}); !errors.Is(err, domainerrors.ErrAlreadyCheckedOut) {
		t.Fatalf("expected ErrAlreadyCheckedOut, got %v", err)
	}
}

func TestListByProjectDateOrderedByCheckIn(t *testing.T) {
	service := newTestService(staticLocator{located: false})
	ctx := context.Background()

	if _, err := service.CheckIn(ctx, "project-1", "user-1", CheckInInput{}); err != nil {
		t.Fatalf("CheckIn user-1: %v", err)
	}
	if _, err := service.CheckIn(ctx, "project-1", "user-2", CheckInInput{}); err != nil {
		t.Fatalf("CheckIn user-2: %v", err)
	}
	if _, err := service.CheckIn(ctx, "project-2", "user-3", CheckInInput{}); err != nil {
		t.Fatalf("CheckIn user-3: %v", err)
	}

	records, err := service.ListByProjectDate(ctx, "project-1", "2026-03-01")
	if err != nil {
		t.Fatalf("ListByProjectDate: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].UserID != "user-1" || records[1].UserID != "user-2" {
		t.Fatalf("expected check-in order, got %+v", records)
	}

	if _, err := service.ListByProjectDate(ctx, "project-1", "01-03-2026"); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("bad date: expected ErrInvalidRequest, got %v", err)
	}
}
