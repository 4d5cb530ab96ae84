package tcs34725

import (
	"context"
	"encoding/binary"
	"time"
)

// RawSample holds one acquisition of the four 16-bit channel counts.
type RawSample struct {
	R uint16
	G uint16
	B uint16
	C uint16
}

// integrationBase maps the named presets to their datasheet integration
// times in milliseconds (2.4ms rounded up).
var integrationBase = map[IntegrationTime]time.Duration{
	IntegrationTime2_4ms: 3 * time.Millisecond,
	IntegrationTime24ms:  24 * time.Millisecond,
	IntegrationTime50ms:  50 * time.Millisecond,
	IntegrationTime101ms: 101 * time.Millisecond,
	IntegrationTime154ms: 154 * time.Millisecond,
	IntegrationTime700ms: 700 * time.Millisecond,
}

// delayFor returns how long to wait before channel data is valid. Presets
// use the datasheet timing; any other value is taken as a direct millisecond
// count. Both get a 1ms margin on top.
func delayFor(it IntegrationTime) time.Duration {
	base, ok := integrationBase[it]
	if !ok {
		base = time.Duration(it) * time.Millisecond
	}
	return base + time.Millisecond
}

func sampleBucket(it IntegrationTime) string {
	switch it {
	case IntegrationTime2_4ms:
		return statSamples2_4ms
	case IntegrationTime24ms:
		return statSamples24ms
	case IntegrationTime50ms:
		return statSamples50ms
	case IntegrationTime101ms:
		return statSamples101ms
	case IntegrationTime154ms:
		return statSamples154ms
	case IntegrationTime700ms:
		return statSamples700ms
	}
	return statSamplesUserdef
}

// AcquireRaw blocks for the configured integration period, then fetches the
// full channel block in one 8-byte read. The sample is all-zero on failure;
// the error return is authoritative.
func (d *Device) AcquireRaw(ctx context.Context) (RawSample, error) {
	if err := d.wait(ctx, delayFor(d.state.IntegrationTime)); err != nil {
		return RawSample{}, err
	}
	var payload [8]byte
	if err := d.readBlock(ctx, regCDataL, payload[:]); err != nil {
		return RawSample{}, err
	}
	sample := RawSample{
		C: binary.LittleEndian.Uint16(payload[0:2]),
		R: binary.LittleEndian.Uint16(payload[2:4]),
		G: binary.LittleEndian.Uint16(payload[4:6]),
		B: binary.LittleEndian.Uint16(payload[6:8]),
	}
	d.stats.Inc(sampleBucket(d.state.IntegrationTime))
	return sample, nil
}
