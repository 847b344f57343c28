package usecase

import (
	"context"
	"strings"

	"golang.org/x/text/message"

	"smartagri/internal/domain/entity"
	"smartagri/pkg/errors"
	"smartagri/pkg/i18n"
)

const heatThresholdCelsius = 32

type WeatherUseCase struct {
	provider     WeatherProvider
	fallbackCity string
}

func NewWeatherUseCase(provider WeatherProvider, fallbackCity string) *WeatherUseCase {
	return &WeatherUseCase{
		provider:     provider,
		fallbackCity: fallbackCity,
	}
}

// Coordinates is the caller's position. A nil *Coordinates means location
// access was denied.
type Coordinates struct {
	Lat float64
	Lon float64
}

type WeatherReport struct {
	Weather *entity.Weather `json:"weather"`
	Tip     string          `json:"tip"`
	Notice  string          `json:"notice,omitempty"`
}

// Current reports the weather at coords, or at the fallback city when coords
// is nil. Fallback reports are flagged as fixed-location.
func (uc *WeatherUseCase) Current(ctx context.Context, coords *Coordinates, p *message.Printer) (*WeatherReport, error) {
	var (
		weather *entity.Weather
		err     error
	)
	if coords != nil {
		weather, err = uc.provider.ByCoordinates(ctx, coords.Lat, coords.Lon)
	} else {
		weather, err = uc.provider.ByCity(ctx, uc.fallbackCity)
	}
	if err != nil {
		return nil, errors.BackendUnavailable("Weather service unavailable", err)
	}

	report := &WeatherReport{
		Weather: weather,
		Tip:     FarmingTip(weather, p),
	}
	if coords == nil {
		weather.FixedLocation = true
		report.Notice = p.Sprintf(i18n.MsgFixedLocation, uc.fallbackCity)
	}
	return report, nil
}

// FarmingTip picks advice from the current conditions. Rain wins over heat.
func FarmingTip(w *entity.Weather, p *message.Printer) string {
	switch {
	case strings.Contains(strings.ToLower(w.Condition), "rain"):
		return p.Sprintf(i18n.MsgTipRain)
	case w.Temperature > heatThresholdCelsius:
		return p.Sprintf(i18n.MsgTipHeat)
	default:
		return p.Sprintf(i18n.MsgTipFavorable)
	}
}
