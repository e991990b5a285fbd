package units

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("thermo/units", "dimensional unit algebra")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
