package species

// Species is a host species record
type Species struct {
	Dex   int    `yaml:"dex"`
	Token string `yaml:"token"`
	Name  string `yaml:"name"`
}

// Table looks species up by their numeric index. The host species table is static data
// loaded before the engine starts, so lookups take no context.
type Table interface {
	Get(dex int) (*Species, bool)
}
