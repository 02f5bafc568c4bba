package services

import "testing"

func TestDistanceMetersKnownPair(t *testing.T) {
	// Riyadh city center to a point roughly 1 km north.
	distance := DistanceMeters(24.7136, 46.6753, 24.7226, 46.6753)
	if distance < 950 || distance > 1050 {
		t.Fatalf("expected ~1000m, got %.1f", distance)
	}
}

func TestDistanceMetersZeroForSamePoint(t *testing.T) {
	if distance := DistanceMeters(24.7136, 46.6753, 24.7136, 46.6753); distance != 0 {
		t.Fatalf("expected 0, got %f", distance)
	}
}

func TestWithinRadius(t *testing.T) {
	centerLat, centerLng := 24.7136, 46.6753
	// ~111m per 0.001 degree of latitude.
	nearLat := centerLat + 0.003
	farLat := centerLat + 0.006

	if !WithinRadius(centerLat, centerLng, nearLat, centerLng, 500) {
		t.Fatalf("~330m point should be inside a 500m radius")
	}
	if WithinRadius(centerLat, centerLng, farLat, centerLng, 500) {
		t.Fatalf("~660m point should be outside a 500m radius")
	}
}
