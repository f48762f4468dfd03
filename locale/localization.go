package locale

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type LocaleConfig struct {
	Nav      NavConfig      `yaml:"Nav" json:"Nav"`
	Hero     HeroConfig     `yaml:"Hero" json:"Hero"`
	About    AboutConfig    `yaml:"About" json:"About"`
	Projects ProjectsConfig `yaml:"Projects" json:"Projects"`
	Gallery  GalleryConfig  `yaml:"Gallery" json:"Gallery"`
	Facts    FactsConfig    `yaml:"Facts" json:"Facts"`
	Contact  ContactConfig  `yaml:"Contact" json:"Contact"`
	Thermal  ThermalConfig  `yaml:"Thermal" json:"Thermal"`
	Footer   FooterConfig   `yaml:"Footer" json:"Footer"`
}

type NavConfig struct {
	Home     string `yaml:"Home" json:"Home"`
	About    string `yaml:"About" json:"About"`
	Projects string `yaml:"Projects" json:"Projects"`
	Gallery  string `yaml:"Gallery" json:"Gallery"`
	Contact  string `yaml:"Contact" json:"Contact"`
	Thermal  string `yaml:"Thermal" json:"Thermal"`
}

type HeroConfig struct {
	Title        string `yaml:"Title" json:"Title"`
	Subtitle     string `yaml:"Subtitle" json:"Subtitle"`
	CallToAction string `yaml:"CallToAction" json:"CallToAction"`
}

type AboutConfig struct {
	Header string `yaml:"Header" json:"Header"`
	Body   string `yaml:"Body" json:"Body"`
}

type ProjectsConfig struct {
	Header     string `yaml:"Header" json:"Header"`
	ReadMore   string `yaml:"ReadMore" json:"ReadMore"`
	NotFound   string `yaml:"NotFound" json:"NotFound"`
	BackToList string `yaml:"BackToList" json:"BackToList"`
}

type GalleryConfig struct {
	Header        string `yaml:"Header" json:"Header"`
	OpenLabel     string `yaml:"OpenLabel" json:"OpenLabel"`
	CloseLabel    string `yaml:"CloseLabel" json:"CloseLabel"`
	NextLabel     string `yaml:"NextLabel" json:"NextLabel"`
	PreviousLabel string `yaml:"PreviousLabel" json:"PreviousLabel"`
	Slideshow     string `yaml:"Slideshow" json:"Slideshow"`
	Loading       string `yaml:"Loading" json:"Loading"`
	LoadError     string `yaml:"LoadError" json:"LoadError"`
}

type FactsConfig struct {
	Header string `yaml:"Header" json:"Header"`
}

type ContactConfig struct {
	Header         string `yaml:"Header" json:"Header"`
	NameLabel      string `yaml:"NameLabel" json:"NameLabel"`
	EmailLabel     string `yaml:"EmailLabel" json:"EmailLabel"`
	MessageLabel   string `yaml:"MessageLabel" json:"MessageLabel"`
	SubscribeLabel string `yaml:"SubscribeLabel" json:"SubscribeLabel"`
	SendButton     string `yaml:"SendButton" json:"SendButton"`
	Success        string `yaml:"Success" json:"Success"`
	InvalidInput   string `yaml:"InvalidInput" json:"InvalidInput"`
	TooFrequent    string `yaml:"TooFrequent" json:"TooFrequent"`
	OnServerError  string `yaml:"OnServerError" json:"OnServerError"`
}

type ThermalConfig struct {
	Header            string `yaml:"Header" json:"Header"`
	AmbientLabel      string `yaml:"AmbientLabel" json:"AmbientLabel"`
	ColonySizeLabel   string `yaml:"ColonySizeLabel" json:"ColonySizeLabel"`
	AltitudeLabel     string `yaml:"AltitudeLabel" json:"AltitudeLabel"`
	OxygenFactorLabel string `yaml:"OxygenFactorLabel" json:"OxygenFactorLabel"`
	BaseTempLabel     string `yaml:"BaseTempLabel" json:"BaseTempLabel"`
	MetabolicLabel    string `yaml:"MetabolicLabel" json:"MetabolicLabel"`
	BoxTempsHeader    string `yaml:"BoxTempsHeader" json:"BoxTempsHeader"`
	CalculateButton   string `yaml:"CalculateButton" json:"CalculateButton"`
}

type FooterConfig struct {
	Tagline  string `yaml:"Tagline" json:"Tagline"`
	Rights   string `yaml:"Rights" json:"Rights"`
	MadeWith string `yaml:"MadeWith" json:"MadeWith"`
}

func LoadConfig(path string, config *LocaleConfig) error {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err = yaml.Unmarshal(fileBytes, config); err != nil {
		return err
	}

	return nil
}

func InitConfig(path string) (*LocaleConfig, error) {
	config := &LocaleConfig{}
	if err := LoadConfig(path, config); err != nil {
		return nil, err
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}
