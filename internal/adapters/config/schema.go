package config

// ProjectFile represents the structure of the cmake-node.yaml file.
type ProjectFile struct {
	Config     string            `yaml:"config"`
	Generator  string            `yaml:"generator"`
	Arch       string            `yaml:"arch"`
	CMake      string            `yaml:"cmake"`
	Toolchain  string            `yaml:"toolchain"`
	WASISDK    string            `yaml:"wasi_sdk"`
	Production bool              `yaml:"production"`
	Defines    map[string]string `yaml:"defines"`
}
