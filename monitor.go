package termglass

// MonitorType selects color or one of the monochrome phosphor emulations.
type MonitorType int

// Monochrome monitor presets. MonitorColor disables the monochrome pass.
const (
	MonitorColor MonitorType = iota
	MonitorWhite
	MonitorAmber
	MonitorGreen
	MonitorApple2
	MonitorFuturistic
)

// monoColors are the phosphor tint masks for the monochrome presets,
// indexed by MonitorType−1.
var monoColors = [5]RGBA{
	RGB(1, 1, 1),                         // white
	RGB(0xFF/255.0, 0x81/255.0, 0x00/255.0), // amber
	RGB(0x0C/255.0, 0xCC/255.0, 0x68/255.0), // green
	RGB(0x00/255.0, 0xD5/255.0, 0x6D/255.0), // Apple ][
	RGB(0x72/255.0, 0x9F/255.0, 0xCF/255.0), // futuristic
}

// PhosphorMask returns the RGB multiplier for a monochrome preset. For
// MonitorColor it returns white (identity).
func (t MonitorType) PhosphorMask() RGBA {
	if t <= MonitorColor || int(t) > len(monoColors) {
		return White
	}
	return monoColors[t-1]
}

// Effect mode values for Frame.EffectMode. The CRT filter engages when
// the mode is within ±0.1 of EffectCRT; any other value passes content
// through untouched aside from overlays and background.
const (
	EffectNone float64 = 0
	EffectCRT  float64 = 1
	// EffectCheckers keeps the pass-through content path but renders the
	// checkerboard background in margins (the default for editing).
	EffectCheckers float64 = 2
)

// effectTolerance is the match window around EffectCRT.
const effectTolerance = 0.1

// MonitorSettings carries the CRT emulation parameters and the selection
// override colors. All values are already in shader units; use
// MonitorSettingsFromPrefs to convert user-facing preference scales.
type MonitorSettings struct {
	Gamma      float64
	Contrast   float64
	Saturation float64
	Brightness float64
	Curvature  float64
	Light      float64
	Blur       float64
	Scanlines  float64

	Monitor MonitorType

	// SelectionFg and SelectionBg override cell colors inside a
	// selection. An alpha of zero disables the override: the background
	// then inverts to the cell's foreground color and the foreground is
	// left alone.
	SelectionFg RGBA
	SelectionBg RGBA
}

// NewMonitorSettings returns neutral settings: no geometric distortion
// and identity tone mapping.
func NewMonitorSettings() MonitorSettings {
	return MonitorSettings{
		Gamma:      1,
		Contrast:   1,
		Saturation: 1,
		Brightness: 1,
	}
}

// MonitorSettingsFromPrefs converts user-facing preference values
// (0..100-style slider positions) into shader units.
// The divisors are calibration constants, not derived.
func MonitorSettingsFromPrefs(gamma, contrast, saturation, brightness, blur, curvature, scanlines float64) MonitorSettings {
	return MonitorSettings{
		Gamma:      gamma / 50,
		Contrast:   contrast / 50,
		Saturation: saturation / 50,
		Brightness: brightness / 30,
		Blur:       blur / 30,
		Curvature:  curvature / 30,
		Scanlines:  0.5 * (scanlines / 100),
	}
}

// neutralTone reports whether the tone-mapping combination is an exact
// no-op, letting the output stage skip it for bit-exact pass-through.
func (m MonitorSettings) neutralTone() bool {
	return m.Gamma == 1 && m.Contrast == 1 && m.Saturation == 1 && m.Brightness == 1
}
