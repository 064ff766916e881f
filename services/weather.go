package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// WeatherService fetches current weather from OpenWeather.
type WeatherService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewWeatherService() *WeatherService {
	return &WeatherService{
		apiKey:  os.Getenv("OPENWEATHER_API_KEY"),
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// CityWeather is one per-city result. Error is set instead of the weather
// fields when the lookup for that city failed; one bad city never fails
// the batch.
type CityWeather struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature,omitempty"`
	FeelsLike   float64 `json:"feels_like,omitempty"`
	Description string  `json:"description,omitempty"`
	IconCode    string  `json:"icon_code,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// GetWeatherForCities looks up each city independently and reports
// failures inline.
func (ws *WeatherService) GetWeatherForCities(cities []string) []CityWeather {
	results := make([]CityWeather, 0, len(cities))
	for _, city := range cities {
		results = append(results, ws.fetchCity(city))
	}
	return results
}

func (ws *WeatherService) fetchCity(city string) CityWeather {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", ws.apiKey)
	params.Set("units", "metric") // Celsius

	resp, err := ws.httpClient.Get(ws.baseURL + "?" + params.Encode())
	if err != nil {
		return CityWeather{City: city, Error: fmt.Sprintf("Could not retrieve weather data. %v", err)}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return CityWeather{City: city, Error: fmt.Sprintf("Could not retrieve weather data. status %d", resp.StatusCode)}
	}

	var data struct {
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	}
	if err := json.Unmarshal(body, &data); err != nil || len(data.Weather) == 0 {
		return CityWeather{City: city, Error: "Could not parse weather data."}
	}

	return CityWeather{
		City:        city,
		Temperature: data.Main.Temp,
		FeelsLike:   data.Main.FeelsLike,
		Description: titleCase(data.Weather[0].Description),
		// Full icon URL can be built client-side:
		// http://openweathermap.org/img/wn/{icon_code}@2x.png
		IconCode: data.Weather[0].Icon,
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
