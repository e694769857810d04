package entity

import (
	"fmt"
	"strings"

	"github.com/sanops/zonectl/internal/domain"
	"github.com/sanops/zonectl/internal/domain/valueobject"
)

type Fabric string

const (
	FabricA Fabric = "A"
	FabricB Fabric = "B"
)

func (f Fabric) Validate() error {
	if f != FabricA && f != FabricB {
		return fmt.Errorf("%w: %q, must be A or B", domain.ErrInvalidFabric, string(f))
	}
	return nil
}

type Role string

const (
	RoleInitiator Role = "I"
	RoleTarget    Role = "T"
)

func (r Role) Validate() error {
	if r != RoleInitiator && r != RoleTarget {
		return fmt.Errorf("%w: %q, must be I or T", domain.ErrInvalidRole, string(r))
	}
	return nil
}

// DevicePort is one row of the administrator-maintained device table: a
// Fibre Channel port identified by its WWPN, attached to one of the two
// fabrics. Row carries the 1-based source row for error reporting.
type DevicePort struct {
	Node         string
	Interface    string
	SubInterface string
	Fabric       Fabric
	Role         Role
	WWPN         valueobject.WWN
	WWNN         valueobject.WWN

	Row int
}

// AliasName derives the switch alias for this port:
// ali_<node>_<iface>[_<subif>]_F<fabric>.
func (d *DevicePort) AliasName() string {
	var b strings.Builder
	b.WriteString("ali_")
	b.WriteString(d.Node)
	if d.Interface != "" {
		b.WriteString("_")
		b.WriteString(d.Interface)
	}
	if d.SubInterface != "" {
		b.WriteString("_")
		b.WriteString(d.SubInterface)
	}
	b.WriteString("_F")
	b.WriteString(string(d.Fabric))
	return b.String()
}
