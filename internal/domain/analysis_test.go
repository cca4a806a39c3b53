package domain

import "testing"

func TestClassifyReply(t *testing.T) {
	tests := []struct {
		name           string
		reply          string
		expectedCode   AnalysisCode
		expectedNumber string
	}{
		{"sentinel no vehicle", SentinelNoVehicle, CodeNoVehicle, ""},
		{"sentinel plate unreadable", SentinelPlateUnreadable, CodePlateUnreadable, ""},
		{"plate value", "MH12AB3456", CodeSuccess, "MH12AB3456"},
		{"sentinel-like but different case", "no_vehicle_found", CodeSuccess, "no_vehicle_found"},
		{"sentinel with extra text", "NO_VEHICLE_FOUND.", CodeSuccess, "NO_VEHICLE_FOUND."},
		{"empty reply", "", CodeSuccess, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ClassifyReply(tt.reply)
			if resp.Code != tt.expectedCode {
				t.Errorf("Code = %q, expected %q", resp.Code, tt.expectedCode)
			}
			if resp.VehicleNumber != tt.expectedNumber {
				t.Errorf("VehicleNumber = %q, expected %q", resp.VehicleNumber, tt.expectedNumber)
			}
			if resp.Message == "" {
				t.Error("Message must not be empty")
			}
		})
	}
}
