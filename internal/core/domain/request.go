package domain

// SearchRequest is a search as the user states it, with places still unresolved.
type SearchRequest struct {
	Name     string `yaml:"name"`
	Mode     Mode   `yaml:"mode"`
	To       string `yaml:"to"`
	From     string `yaml:"from"`
	CheckIn  string `yaml:"check_in"`
	CheckOut string `yaml:"check_out"`
	Adults   int    `yaml:"adults"`
	Rooms    int    `yaml:"rooms"`
	RadiusKm int    `yaml:"radius"`
	Limit    int    `yaml:"limit"`
}

// Label names the request in output.
func (r *SearchRequest) Label() string {
	if r.Name != "" {
		return r.Name
	}
	if r.From != "" {
		return string(r.Mode) + " " + r.From + " → " + r.To
	}
	return string(r.Mode) + " " + r.To
}
