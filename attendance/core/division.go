package core

import (
	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"github.com/snnnxs25024-ux/absensi-backend/utils"
)

// divisionDepartments maps a session division to the departments allowed to
// check in. The TP SUNTER floors take workers from every department; the
// specialised divisions only take their own.
var divisionDepartments = map[string][]string{
	model.DivisionTpSunter1: {
		model.DepartmentSocOperator,
		model.DepartmentCache,
		model.DepartmentReturn,
		model.DepartmentInventory,
	},
	model.DivisionTpSunter2: {
		model.DepartmentSocOperator,
		model.DepartmentCache,
		model.DepartmentReturn,
		model.DepartmentInventory,
	},
	model.DivisionCache:     {model.DepartmentCache},
	model.DivisionReturn:    {model.DepartmentReturn},
	model.DivisionInventory: {model.DepartmentInventory},
}

func DepartmentsForDivision(division string) []string {
	return divisionDepartments[division]
}

// DivisionAllowsDepartment reports whether workers from the department may
// join a session of the division. Unknown divisions admit nobody.
func DivisionAllowsDepartment(division, department string) bool {
	return utils.Contains(divisionDepartments[division], department)
}
