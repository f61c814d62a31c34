package domain

// Site represents a physical site
type Site struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Location represents a room, floor or cage within a site
type Location struct {
	ID     int64  `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	SiteID int64  `json:"site_id,omitempty" yaml:"site_id,omitempty"`
}

// Device represents a piece of equipment that modules are installed in.
// Site and Location are optional.
type Device struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Site     *Site     `json:"site,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// VirtualMachine owns VM interfaces
type VirtualMachine struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// LocationLabel builds the "Umístění" column for a device:
//
//	"<site> <location> : <device>"  site and location known
//	"<site> : <device>"             only site known
//	"<device>"                      otherwise
//
// A nil device yields an empty string.
func LocationLabel(d *Device) string {
	if d == nil {
		return ""
	}

	siteName := ""
	if d.Site != nil {
		siteName = d.Site.Name
	}
	locationName := ""
	if d.Location != nil {
		locationName = d.Location.Name
	}

	switch {
	case siteName != "" && locationName != "":
		return siteName + " " + locationName + " : " + d.Name
	case siteName != "":
		return siteName + " : " + d.Name
	default:
		return d.Name
	}
}
