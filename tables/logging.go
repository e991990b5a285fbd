package tables

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("thermo/tables", "thermodynamic state tables")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
