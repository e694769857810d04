package entity

// DeviceRecord is one raw, normalized row of the device table before
// validation: trimmed fields, fabric and role upper-cased, WWN text
// lower-cased. Parsing into a DevicePort happens during validation so that
// malformed rows are reported with full row context instead of aborting the
// load.
type DeviceRecord struct {
	Node         string
	Interface    string
	SubInterface string
	Fabric       string
	Role         string
	WWPN         string
	WWNN         string

	Row int
}
