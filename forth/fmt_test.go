package forth

import "fmt"

func sprintf(mess string, args ...interface{}) string {
	if len(args) == 0 {
		return mess
	}
	return fmt.Sprintf(mess, args...)
}
