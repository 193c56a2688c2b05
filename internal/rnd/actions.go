package rnd

// Outbound action names. The server owns their semantics.
const (
	ActionNav                 = "nav"
	ActionUploadTech          = "updt_tech"
	ActionUploadDesign        = "updt_design"
	ActionClearDisk           = "clear_tech"
	ActionEjectTech           = "eject_tech"
	ActionEjectDesign         = "eject_design"
	ActionCopyTech            = "copy_tech"
	ActionCopyDesign          = "copy_design"
	ActionDeconstruct         = "deconstruct"
	ActionEjectItem           = "eject_item"
	ActionSearch              = "search"
	ActionSetCategory         = "setCategory"
	ActionBuild               = "build"
	ActionImprint             = "imprint"
	ActionLatheEjectSheet     = "lathe_ejectsheet"
	ActionImprinterEjectSheet = "imprinter_ejectsheet"
	ActionDisposeAllLathe     = "disposeallP"
	ActionDisposeAllImprinter = "disposeallI"
	ActionDisposeLathe        = "disposeP"
	ActionDisposeImprinter    = "disposeI"
	ActionSync                = "sync"
	ActionToggleSync          = "togglesync"
	ActionFindDevice          = "find_device"
	ActionDisconnect          = "disconnect"
	ActionMaxResearch         = "maxresearch"
)

// Devices accepted by the disconnect action.
const (
	DeviceDestroy   = "destroy"
	DeviceLathe     = "lathe"
	DeviceImprinter = "imprinter"
)

// EjectCustom asks the server to prompt for a sheet amount.
const EjectCustom = "custom"

// Request is one fire-and-forget action for the server.
type Request struct {
	Action string         `json:"action"`
	Params map[string]any `json:"params,omitempty"`
}

// NewRequest builds a request from alternating key/value pairs.
func NewRequest(action string, kv ...any) Request {
	req := Request{Action: action}
	if len(kv) == 0 {
		return req
	}
	req.Params = make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		req.Params[key] = kv[i+1]
	}
	return req
}

// NavRequest targets the given screen.
func NavRequest(nav Nav) Request {
	return NewRequest(ActionNav, "menu", nav.Menu, "submenu", nav.Submenu)
}

// Param returns a parameter value, if set.
func (r Request) Param(key string) (any, bool) {
	if r.Params == nil {
		return nil, false
	}
	v, ok := r.Params[key]
	return v, ok
}
