package config

type yamlConfig struct {
	Server struct {
		URL       string `yaml:"url"`
		Token     string `yaml:"token"`
		TimeoutMS *int   `yaml:"timeout_ms"`
	} `yaml:"server"`

	Theme struct {
		File string `yaml:"file"`
	} `yaml:"theme"`

	Output struct {
		Format string `yaml:"format"`
	} `yaml:"output"`
}
