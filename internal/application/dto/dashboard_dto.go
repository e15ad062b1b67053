package dto

import "github.com/shopspring/decimal"

// DashboardResponse respuesta de GET /dashboard/Index.
type DashboardResponse struct {
	TotalEmployees     int                 `json:"totalEmployees"`
	ActiveEmployees    int                 `json:"activeEmployees"`
	TotalDepartments   int                 `json:"totalDepartments"`
	RecentEmployees    []EmployeeResponse  `json:"recentEmployees"`
	DepartmentStats    []DepartmentStatDTO `json:"departmentStats"`
	ApprovedLeaves     int                 `json:"approvedLeaves"`
	PendingLeaves      int                 `json:"pendingLeaves"`
	RejectedLeaves     int                 `json:"rejectedLeaves"`
	TotalLeaveRequests int                 `json:"totalLeaveRequests"`
}

// DepartmentStatDTO empleados por departamento.
type DepartmentStatDTO struct {
	Name          string `json:"name"`
	EmployeeCount int    `json:"employeeCount"`
}

// DashboardView datos listos para la vista: KPIs más series de los widgets.
type DashboardView struct {
	DashboardResponse
	LeaveSlices  []ChartSlice // dona de estados de permisos
	DeptLabels   []string     // barras: empleados por departamento
	DeptCounts   []int
	InactiveEmps int
}

// ChartSlice porción de un gráfico con su porcentaje sobre el total.
type ChartSlice struct {
	Label   string          `json:"label"`
	Value   int             `json:"value"`
	Percent decimal.Decimal `json:"percent"`
}
