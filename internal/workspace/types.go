package workspace

import "fmt"

// RuntimeKind selects whether a template provisions a VM or a container
type RuntimeKind string

const (
	RuntimeKindVM        RuntimeKind = "VM"
	RuntimeKindContainer RuntimeKind = "Container"
)

// ParseRuntimeKind converts user input into a RuntimeKind
func ParseRuntimeKind(s string) (RuntimeKind, error) {
	switch RuntimeKind(s) {
	case RuntimeKindVM, RuntimeKindContainer:
		return RuntimeKind(s), nil
	}
	return "", fmt.Errorf("unknown runtime kind %q (expected %s or %s)", s, RuntimeKindVM, RuntimeKindContainer)
}

// ResourceInterval is an inclusive [Min, Max] bound for a resource
type ResourceInterval struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Intervals groups the bounds supplied for each resource kind
type Intervals struct {
	CPU  ResourceInterval `yaml:"cpu" json:"cpu"`
	RAM  ResourceInterval `yaml:"ram" json:"ram"`
	Disk ResourceInterval `yaml:"disk" json:"disk"`
}

// Image is a catalog entry together with the runtime kinds it can run as.
// The order of RuntimeKinds is significant: the first entry is the default.
type Image struct {
	Name         string        `yaml:"name" json:"name"`
	RuntimeKinds []RuntimeKind `yaml:"runtimeKinds" json:"runtimeKinds"`
}

// Template is the configuration blueprint edited by the template dialog.
// Templates are values; two templates are equal when all fields are equal.
type Template struct {
	Name        string      `yaml:"name" json:"name"`
	Image       string      `yaml:"image" json:"image"`
	RuntimeKind RuntimeKind `yaml:"runtimeKind" json:"runtimeKind"`
	DiskMode    bool        `yaml:"diskMode" json:"diskMode"`
	GUI         bool        `yaml:"gui" json:"gui"`
	CPU         int         `yaml:"cpu" json:"cpu"`
	RAM         int         `yaml:"ram" json:"ram"`
	Disk        int         `yaml:"disk" json:"disk"`
}

// DiskModeLabel describes the disk behaviour of the template
func (t Template) DiskModeLabel() string {
	if t.DiskMode {
		return "persistent"
	}
	return "ephemeral"
}

// Instance is a resource spawned from a template
type Instance struct {
	ID      int    `yaml:"id" json:"id"`
	Name    string `yaml:"name" json:"name"`
	IP      string `yaml:"ip" json:"ip"`
	Running bool   `yaml:"running" json:"running"`
}

// TemplateRow is a template summary shown in the templates table
type TemplateRow struct {
	ID        string     `yaml:"id" json:"id"`
	Name      string     `yaml:"name" json:"name"`
	GUI       bool       `yaml:"gui" json:"gui"`
	Instances []Instance `yaml:"instances" json:"instances"`
}

// Role drives which actions the templates table exposes
type Role string

const (
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// ParseRole converts user input into a Role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleManager, RoleUser:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q (expected %s or %s)", s, RoleManager, RoleUser)
}
