package substances

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("thermo/substances", "substance state models")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
