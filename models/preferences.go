package models

// SyncPreferences are the user-controlled switches that gate automatic
// drains. Manual "Sync Now" requests ignore them.
type SyncPreferences struct {
	// AutoSync enables draining on connectivity restore and on the periodic
	// schedule.
	AutoSync bool `json:"auto_sync"`
	// WiFiOnly restricts automatic drains to Wi-Fi connections.
	WiFiOnly bool `json:"wifi_only"`
	// BatterySaverSync allows automatic drains while battery saver is on.
	BatterySaverSync bool `json:"battery_saver_sync"`
}

// DeviceState is the host-reported network and power condition.
type DeviceState struct {
	Online       bool `json:"online"`
	OnWiFi       bool `json:"on_wifi"`
	BatterySaver bool `json:"battery_saver"`
}

// AllowsAutoSync reports whether an automatic drain may start under the given
// device state.
func (p SyncPreferences) AllowsAutoSync(state DeviceState) bool {
	if !p.AutoSync || !state.Online {
		return false
	}
	if p.WiFiOnly && !state.OnWiFi {
		return false
	}
	if state.BatterySaver && !p.BatterySaverSync {
		return false
	}
	return true
}
