package openweather

type Config struct {
	BaseURL string `envconfig:"BASE_URL" default:"https://api.openweathermap.org"`
	ApiKey  string `envconfig:"API_KEY"`
	Units   string `envconfig:"UNITS" default:"metric"`
	Lang    string `envconfig:"LANG" default:"uk"`
}
