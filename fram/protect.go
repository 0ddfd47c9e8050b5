package fram

// wpState tracks the write-protect line. A device constructed without a
// protect pin stays wpUnmanaged for its whole lifetime; only the
// enable/disable operations move between wpDisabled and wpEnabled.
type wpState uint8

const (
	wpUnmanaged wpState = iota
	wpDisabled
	wpEnabled
)

// initProtect configures the WP pin as an output and applies the initial
// state. Called once from New; without a pin the state stays unmanaged.
func (d *Device) initProtect() {
	if d.config.ProtectPin == nil {
		return
	}
	d.wp = wpDisabled
	d.config.ProtectPin.ConfigureOutput()
	_ = d.setProtect(d.config.InitiallyProtected)
}

// EnableWriteProtect drives the WP line high, blocking chip writes.
// Fails with ErrProtectUnmanaged if no pin is managed.
func (d *Device) EnableWriteProtect() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setProtect(true)
}

// DisableWriteProtect drives the WP line low, allowing chip writes.
// Fails with ErrProtectUnmanaged if no pin is managed.
func (d *Device) DisableWriteProtect() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setProtect(false)
}

// Protected reports whether write protection is currently asserted.
// Always false on a device without a managed WP pin.
func (d *Device) Protected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.wp == wpEnabled
}

func (d *Device) setProtect(enable bool) error {
	if d.wp == wpUnmanaged {
		return ErrProtectUnmanaged
	}
	if enable {
		d.config.ProtectPin.Set(true)
		d.wp = wpEnabled
	} else {
		d.config.ProtectPin.Set(false)
		d.wp = wpDisabled
	}
	d.logDebug("write protect", "enabled", enable)
	return nil
}
