// Package authz holds the closed role set and the capability table that
// replaces per-route role-string checks. Every route is gated by exactly one
// (resource, operation) pair; the table below is the single source of truth
// for which roles may perform it.
package authz

// Role is the closed set of user roles.
type Role string

const (
	RoleManager  Role = "manager"
	RoleStoreman Role = "storeman"
	RoleEmployee Role = "employee"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleStoreman, RoleEmployee:
		return true
	}
	return false
}

// Resource identifies a kind of API resource.
type Resource string

const (
	ResProjects      Resource = "projects"
	ResEmployees     Resource = "employees"
	ResAttendance    Resource = "attendance"
	ResPayroll       Resource = "payroll"
	ResInventory     Resource = "inventory"
	ResExpenses      Resource = "expenses"
	ResEnquiries     Resource = "enquiries"
	ResReports       Resource = "reports"
	ResDashboard     Resource = "dashboard"
	ResUsers         Resource = "users"
	ResNotifications Resource = "notifications"
)

// Op is the operation performed on a resource.
type Op string

const (
	OpRead   Op = "read"
	OpWrite  Op = "write"
	OpDelete Op = "delete"
	OpAdmin  Op = "admin" // manage lifecycle beyond plain writes (assign, generate, mark-paid…)
)

type capKey struct {
	res Resource
	op  Op
}

// capabilities maps (resource, operation) to the roles allowed to perform it.
// Absent entries deny everything except the manager, who is allowed
// everywhere by the manager bypass in Allow.
var capabilities = map[capKey][]Role{
	{ResProjects, OpRead}:  {RoleStoreman, RoleEmployee}, // own assignments only
	{ResProjects, OpWrite}: {},                           // manager only
	{ResProjects, OpAdmin}: {},

	{ResEmployees, OpRead}:   {RoleStoreman, RoleEmployee},
	{ResEmployees, OpWrite}:  {RoleEmployee},
	{ResEmployees, OpDelete}: {},

	{ResAttendance, OpRead}:  {RoleStoreman, RoleEmployee},
	{ResAttendance, OpWrite}: {RoleEmployee},

	{ResPayroll, OpRead}:  {RoleStoreman, RoleEmployee},
	{ResPayroll, OpAdmin}: {},

	{ResInventory, OpRead}:   {RoleStoreman, RoleEmployee},
	{ResInventory, OpWrite}:  {RoleStoreman},
	{ResInventory, OpDelete}: {},

	{ResExpenses, OpRead}:  {RoleStoreman, RoleEmployee},
	{ResExpenses, OpWrite}: {RoleStoreman},

	{ResEnquiries, OpRead}:  {RoleStoreman, RoleEmployee},
	{ResEnquiries, OpWrite}: {RoleStoreman, RoleEmployee},
	{ResEnquiries, OpAdmin}: {},

	{ResReports, OpRead}:  {RoleStoreman, RoleEmployee},
	{ResReports, OpAdmin}: {RoleStoreman}, // inventory report

	{ResDashboard, OpRead}: {},

	{ResUsers, OpAdmin}: {},

	{ResNotifications, OpRead}:  {RoleStoreman, RoleEmployee},
	{ResNotifications, OpWrite}: {RoleStoreman, RoleEmployee},
}

// Allow reports whether role may perform op on res.
// Managers pass every check; other roles require an explicit table entry.
func Allow(role Role, res Resource, op Op) bool {
	if role == RoleManager {
		return true
	}
	for _, r := range capabilities[capKey{res, op}] {
		if r == role {
			return true
		}
	}
	return false
}
