package cli

// View is the single active screen of the client. There is no history
// stack; navigation replaces the view.
type View string

const (
	ViewHome     View = "home"
	ViewLogin    View = "login"
	ViewRegister View = "register"
	ViewAdmin    View = "admin"
)

func (v View) Valid() bool {
	switch v {
	case ViewHome, ViewLogin, ViewRegister, ViewAdmin:
		return true
	}
	return false
}
