package conditions

import "github.com/fieldday-games/fieldday/game/energy"

// Weather represents the atmospheric conditions an entity flies through.
type Weather int

const (
	// Clear conditions
	WeatherClear Weather = iota
	WeatherSunny

	// Light conditions
	WeatherPartlyCloudy
	WeatherOvercast
	WeatherLightWind

	// Moderate conditions
	WeatherCloudy
	WeatherWindy
	WeatherLightRain
	WeatherFog

	// Challenging conditions
	WeatherHeavyWind
	WeatherRain
	WeatherSnow
	WeatherHail

	// Severe conditions
	WeatherStorm
	WeatherHeavyRain
	WeatherBlizzard

	// Extreme conditions, never flyable
	WeatherHurricane
	WeatherTornado
	WeatherThunderstorm
)

// DefaultWeather is the fallback used when parsing unrecognized input.
const DefaultWeather = WeatherClear

// DifficultyLevel ranks this weather from 1 (clear) to 6 (extreme).
func (w Weather) DifficultyLevel() int {
	switch w {
	case WeatherClear, WeatherSunny:
		return 1
	case WeatherPartlyCloudy, WeatherOvercast, WeatherLightWind:
		return 2
	case WeatherCloudy, WeatherWindy, WeatherLightRain, WeatherFog:
		return 3
	case WeatherHeavyWind, WeatherRain, WeatherSnow, WeatherHail:
		return 4
	case WeatherStorm, WeatherHeavyRain, WeatherBlizzard:
		return 5
	default:
		return 6
	}
}

// EnergyCost is the extra energy consumed when flying in this weather.
func (w Weather) EnergyCost() int {
	switch w.DifficultyLevel() {
	case 1, 2:
		return 0
	case 3:
		return 1
	case 4:
		return 2
	case 5:
		return 3
	default:
		return 5
	}
}

// RequiredEnergy is the minimum level needed to fly in this weather.
func (w Weather) RequiredEnergy() energy.Level {
	switch w.DifficultyLevel() {
	case 1, 2:
		return energy.Normal
	case 3, 4:
		return energy.Energetic
	default:
		return energy.Hyperactive
	}
}

// Description returns a human-readable description of this weather.
func (w Weather) Description() string {
	switch w {
	case WeatherClear:
		return "clear skies with excellent visibility"
	case WeatherSunny:
		return "bright sunny conditions with calm air"
	case WeatherPartlyCloudy:
		return "partly cloudy with good visibility"
	case WeatherOvercast:
		return "overcast skies with adequate visibility"
	case WeatherLightWind:
		return "light winds with minor turbulence"
	case WeatherCloudy:
		return "cloudy conditions with reduced visibility"
	case WeatherWindy:
		return "windy conditions with moderate turbulence"
	case WeatherLightRain:
		return "light rain with decreased visibility"
	case WeatherFog:
		return "foggy conditions with poor visibility"
	case WeatherHeavyWind:
		return "heavy winds with significant turbulence"
	case WeatherRain:
		return "steady rain with limited visibility"
	case WeatherSnow:
		return "snowy conditions with ice formation risk"
	case WeatherHail:
		return "hailstorm with impact damage risk"
	case WeatherStorm:
		return "stormy weather with severe turbulence"
	case WeatherHeavyRain:
		return "heavy rain with very poor visibility"
	case WeatherBlizzard:
		return "blizzard conditions with zero visibility"
	case WeatherHurricane:
		return "hurricane-force winds - extremely dangerous"
	case WeatherTornado:
		return "tornado activity - flying prohibited"
	default:
		return "thunderstorm with lightning risk"
	}
}

// SafeForFlying reports whether flying is at all possible in this weather.
func (w Weather) SafeForFlying() bool {
	switch w {
	case WeatherHurricane, WeatherTornado, WeatherThunderstorm:
		return false
	default:
		return true
	}
}

// AffectsVisibility reports whether this weather degrades visibility.
func (w Weather) AffectsVisibility() bool {
	switch w {
	case WeatherClear, WeatherSunny, WeatherPartlyCloudy, WeatherLightWind:
		return false
	default:
		return true
	}
}

// VisibilityLevel grades visibility from 0 (none) to 5 (perfect).
func (w Weather) VisibilityLevel() int {
	switch w {
	case WeatherClear, WeatherSunny:
		return 5
	case WeatherPartlyCloudy, WeatherLightWind:
		return 4
	case WeatherOvercast, WeatherCloudy, WeatherWindy:
		return 3
	case WeatherLightRain, WeatherHeavyWind, WeatherSnow:
		return 2
	case WeatherFog, WeatherRain, WeatherHail, WeatherStorm:
		return 1
	default:
		return 0
	}
}

// AllWeather returns every weather variant.
func AllWeather() []Weather {
	return []Weather{
		WeatherClear, WeatherSunny,
		WeatherPartlyCloudy, WeatherOvercast, WeatherLightWind,
		WeatherCloudy, WeatherWindy, WeatherLightRain, WeatherFog,
		WeatherHeavyWind, WeatherRain, WeatherSnow, WeatherHail,
		WeatherStorm, WeatherHeavyRain, WeatherBlizzard,
		WeatherHurricane, WeatherTornado, WeatherThunderstorm,
	}
}

// WeatherByDifficulty returns weather at or below a difficulty cap.
func WeatherByDifficulty(maxDifficulty int) []Weather {
	var out []Weather
	for _, w := range AllWeather() {
		if w.DifficultyLevel() <= maxDifficulty {
			out = append(out, w)
		}
	}
	return out
}

var weatherNames = []string{
	"clear", "sunny",
	"partly_cloudy", "overcast", "light_wind",
	"cloudy", "windy", "light_rain", "fog",
	"heavy_wind", "rain", "snow", "hail",
	"storm", "heavy_rain", "blizzard",
	"hurricane", "tornado", "thunderstorm",
}

// String returns the display name for this weather.
func (w Weather) String() string {
	switch w {
	case WeatherClear:
		return "Clear"
	case WeatherSunny:
		return "Sunny"
	case WeatherPartlyCloudy:
		return "Partly Cloudy"
	case WeatherOvercast:
		return "Overcast"
	case WeatherLightWind:
		return "Light Wind"
	case WeatherCloudy:
		return "Cloudy"
	case WeatherWindy:
		return "Windy"
	case WeatherLightRain:
		return "Light Rain"
	case WeatherFog:
		return "Fog"
	case WeatherHeavyWind:
		return "Heavy Wind"
	case WeatherRain:
		return "Rain"
	case WeatherSnow:
		return "Snow"
	case WeatherHail:
		return "Hail"
	case WeatherStorm:
		return "Storm"
	case WeatherHeavyRain:
		return "Heavy Rain"
	case WeatherBlizzard:
		return "Blizzard"
	case WeatherHurricane:
		return "Hurricane"
	case WeatherTornado:
		return "Tornado"
	default:
		return "Thunderstorm"
	}
}

// ParseWeather converts free text to a Weather, falling back to
// DefaultWeather when the input is unrecognizable.
func ParseWeather(s string) Weather {
	switch normalize(s) {
	case "clear":
		return WeatherClear
	case "sunny":
		return WeatherSunny
	case "partly_cloudy":
		return WeatherPartlyCloudy
	case "overcast":
		return WeatherOvercast
	case "light_wind":
		return WeatherLightWind
	case "cloudy":
		return WeatherCloudy
	case "windy":
		return WeatherWindy
	case "light_rain":
		return WeatherLightRain
	case "fog", "foggy":
		return WeatherFog
	case "heavy_wind":
		return WeatherHeavyWind
	case "rain", "rainy":
		return WeatherRain
	case "snow", "snowy":
		return WeatherSnow
	case "hail":
		return WeatherHail
	case "storm", "stormy":
		return WeatherStorm
	case "heavy_rain":
		return WeatherHeavyRain
	case "blizzard":
		return WeatherBlizzard
	case "hurricane":
		return WeatherHurricane
	case "tornado":
		return WeatherTornado
	case "thunderstorm", "thunder":
		return WeatherThunderstorm
	}
	if i, ok := closest(normalize(s), weatherNames); ok {
		return AllWeather()[i]
	}
	return DefaultWeather
}
