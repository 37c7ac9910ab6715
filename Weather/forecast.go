package Weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

var (
	ErrNoAPIKey         = errors.New("weather API key not configured")
	ErrLocationNotFound = errors.New("location not found in weather service")
)

const (
	geocodeURL  = "http://api.openweathermap.org/geo/1.0/direct"
	forecastURL = "https://api.openweathermap.org/data/2.5/forecast"
)

// Client talks to the OpenWeatherMap geocoding and 5-day forecast APIs.
type Client struct {
	APIKey     string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		APIKey:     os.Getenv("WEATHER_API_KEY"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Entry is one 3-hour forecast slot, metric units.
type Entry struct {
	Datetime    string  `json:"datetime"`
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	WindSpeed   float64 `json:"wind_speed"`
	Rain        float64 `json:"rain"`
	Snow        float64 `json:"snow"`
}

// ChartPoint is the midday sample used by the temperature and rain charts.
type ChartPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// SiteForecast is the full forecast for a project's location.
type SiteForecast struct {
	Location  string       `json:"location"`
	Forecast  []Entry      `json:"forecast"`
	TempChart []ChartPoint `json:"temp_chart"`
	RainChart []ChartPoint `json:"rain_chart"`
}

type geoResult struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type forecastResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
			Pressure  int     `json:"pressure"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Rain struct {
			ThreeHour float64 `json:"3h"`
		} `json:"rain"`
		Snow struct {
			ThreeHour float64 `json:"3h"`
		} `json:"snow"`
	} `json:"list"`
}

// ForecastForLocation geocodes the free-form location and fetches its 5-day
// forecast in 3-hour slots.
func (c *Client) ForecastForLocation(ctx context.Context, location string) (*SiteForecast, error) {
	if c.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	lat, lon, err := c.geocode(ctx, location)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lon", fmt.Sprintf("%f", lon))
	query.Set("appid", c.APIKey)
	query.Set("units", "metric")

	var data forecastResponse
	if err := c.getJSON(ctx, forecastURL+"?"+query.Encode(), &data); err != nil {
		return nil, err
	}
	if len(data.List) == 0 {
		return nil, errors.New("weather forecast not available")
	}

	result := &SiteForecast{Location: location}
	for _, item := range data.List {
		timestamp, err := time.Parse("2006-01-02 15:04:05", item.DtTxt)
		if err != nil {
			continue
		}

		entry := Entry{
			Datetime:  timestamp.Format("2006-01-02 15:04"),
			Temp:      item.Main.Temp,
			FeelsLike: item.Main.FeelsLike,
			Humidity:  item.Main.Humidity,
			Pressure:  item.Main.Pressure,
			WindSpeed: item.Wind.Speed,
			Rain:      item.Rain.ThreeHour,
			Snow:      item.Snow.ThreeHour,
		}
		if len(item.Weather) > 0 {
			entry.Description = item.Weather[0].Description
			entry.Icon = item.Weather[0].Icon
		}
		result.Forecast = append(result.Forecast, entry)

		// One sample per day keeps the charts readable.
		if timestamp.Hour() == 12 {
			date := timestamp.Format("02-Jan")
			result.TempChart = append(result.TempChart, ChartPoint{Date: date, Value: item.Main.Temp})
			result.RainChart = append(result.RainChart, ChartPoint{Date: date, Value: item.Rain.ThreeHour})
		}
	}
	return result, nil
}

func (c *Client) geocode(ctx context.Context, location string) (lat, lon float64, err error) {
	query := url.Values{}
	query.Set("q", location)
	query.Set("limit", "1")
	query.Set("appid", c.APIKey)

	var results []geoResult
	if err := c.getJSON(ctx, geocodeURL+"?"+query.Encode(), &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, ErrLocationNotFound
	}
	return results[0].Lat, results[0].Lon, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather service returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
