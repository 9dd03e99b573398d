package conditioner

import (
	"sync"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/utils"
)

// Conditioner runs the band-pass and wavelet denoise stages over waveforms.
// Band-pass always runs before denoise when both are enabled.
type Conditioner struct {
	componentMetadata types.ComponentMetadata

	bandpass   types.BandpassConfig
	denoise    types.DenoiseConfig
	configLock sync.RWMutex

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewConditioner constructs a conditioner with the default band-pass and denoise settings.
func NewConditioner(options ...types.Option[*Conditioner]) *Conditioner {
	c := &Conditioner{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "CONDITIONER",
		},
		bandpass: types.DefaultBandpassConfig(),
		denoise:  types.DefaultDenoiseConfig(),
		loggers:  make([]types.Logger, 0),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	return c
}
