package directory

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// User is an intranet user entry.
type User struct {
	ID     int
	Name   string
	Avatar string
}

// Directory resolves user ids to names and avatars from the intranet users XML.
type Directory struct {
	users map[int]User
}

type intranetXML struct {
	Server struct {
		Host     string `xml:"host"`
		Port     string `xml:"port"`
		Protocol string `xml:"protocol"`
	} `xml:"server"`
	Users []struct {
		ID     int    `xml:"id,attr"`
		Avatar string `xml:"avatar"`
		Name   string `xml:"name"`
	} `xml:"users>user"`
}

// Load reads the users XML file at path.
func Load(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open users xml %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses users XML content.
func Read(r io.Reader) (*Directory, error) {
	var doc intranetXML
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode users xml: %w", err)
	}

	var server string
	if doc.Server.Host != "" {
		server = fmt.Sprintf("%s://%s", strings.TrimSpace(doc.Server.Protocol), strings.TrimSpace(doc.Server.Host))
		if port := strings.TrimSpace(doc.Server.Port); port != "" {
			server += ":" + port
		}
	}

	d := &Directory{users: make(map[int]User, len(doc.Users))}
	for _, u := range doc.Users {
		user := User{ID: u.ID, Name: strings.TrimSpace(u.Name)}
		if avatar := strings.TrimSpace(u.Avatar); avatar != "" {
			user.Avatar = server + avatar
		}
		d.users[u.ID] = user
	}
	return d, nil
}

// Lookup returns the user with the given id. A nil Directory knows nobody.
func (d *Directory) Lookup(id int) (User, bool) {
	if d == nil {
		return User{}, false
	}
	u, ok := d.users[id]
	return u, ok
}

// Len reports how many users the directory holds.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.users)
}
