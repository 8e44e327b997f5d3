package domain

// Project is a fully loaded build configuration. Every catalog reference has been
// substituted and every notation parsed.
type Project struct {
	Root           string
	Name           string
	Plugins        PluginDeclaration
	Rules          []OrderingRule
	Target         BuildTarget
	Dependencies   []Coordinate
	Variants       []BuildVariant
	SigningConfigs []SigningConfig
	FlutterSource  string
	RegistryDir    string
}

// Platforms returns the platform imports among the declared dependencies.
func (p *Project) Platforms() []Coordinate {
	var out []Coordinate
	for _, c := range p.Dependencies {
		if c.Platform {
			out = append(out, c)
		}
	}
	return out
}

// Variant returns the declared build type with the given name.
func (p *Project) Variant(name string) (BuildVariant, bool) {
	for _, v := range p.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return BuildVariant{}, false
}
