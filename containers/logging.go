package containers

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("thermo/containers", "substance containers")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
