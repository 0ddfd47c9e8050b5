package fram

import (
	"context"
	"fmt"
	"time"
)

// EraseDevice overwrites the whole memory map with 0x00, one byte-write
// transaction per address in ascending order. The erase stops at the first
// transport failure and is not rolled back; the device is then partially
// erased. Progress is reported through the configured ProgressCallback and
// the context is checked between writes.
func (d *Device) EraseDevice(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	start := time.Now()
	total := int(d.capacity)
	d.logInfo("erasing device", "bytes", total)

	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("erase cancelled at address 0x%03X: %w", i, err)
		}
		if err := d.writeByte(uint16(i), 0x00); err != nil {
			d.logError("erase stopped", "addr", fmt.Sprintf("0x%03X", i))
			return fmt.Errorf("erase at address 0x%03X: %w", i, err)
		}
		d.reportProgress(Progress{
			Current:     i + 1,
			Total:       total,
			Percentage:  float64(i+1) / float64(total) * 100,
			ElapsedTime: time.Since(start),
		})
	}

	d.logInfo("device erased", "bytes", total, "elapsed", time.Since(start).String())
	return nil
}

// reportProgress calls the progress callback if configured.
func (d *Device) reportProgress(progress Progress) {
	if d.config.ProgressCallback != nil {
		d.config.ProgressCallback(progress)
	}
}
