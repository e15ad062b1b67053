package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/ems-web/internal/application/session"
	"github.com/jhoicas/ems-web/internal/application/usecase"
	"github.com/jhoicas/ems-web/internal/infrastructure/cookie"
	"github.com/jhoicas/ems-web/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName        string
	Sessions       *session.Provider
	Cookies        *cookie.Store
	Logger         *logger.Logger
	BackendTimeout time.Duration

	AccountUC    *usecase.AccountUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	DepartmentUC *usecase.DepartmentUseCase
	LeaveUC      *usecase.LeaveUseCase
	ManagerUC    *usecase.ManagerUseCase
	ActivityUC   *usecase.ActivityUseCase
	DashboardUC  *usecase.DashboardUseCase
}

// NewServer construye la aplicación fiber con middlewares, estáticos y rutas.
func NewServer(deps RouterDeps) (*fiber.App, error) {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	views, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	pages := NewPages(views, deps.Sessions, deps.Cookies, deps.Logger, deps.BackendTimeout)

	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(pages),
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: localRequestID,
	}))
	app.Use(RequestLogger(deps.Logger))

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(assets),
		PathPrefix: "static",
		MaxAge:     3600,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	Router(app, pages, deps)
	return app, nil
}

// Router registra las páginas. Cada ruta protegida toma sus roles de la tabla access.
func Router(app *fiber.App, pages *Pages, deps RouterDeps) {
	app.Use(LoadSession(deps.Sessions))

	guard := func(path string) fiber.Handler {
		roles, ok := RolesFor(path)
		if !ok {
			panic("ruta sin entrada en la tabla de acceso: " + path)
		}
		return RequireRole(roles...)
	}
	get := func(path string, h fiber.Handler) { app.Get(path, guard(path), h) }
	post := func(path string, h fiber.Handler) { app.Post(path, guard(path), h) }

	// Cuenta (público)
	account := NewAccountHandler(pages, deps.AccountUC)
	app.Get("/", account.Home)
	app.Get("/unauthorized", account.Unauthorized)
	app.Get(LoginPath, account.LoginPage)
	app.Post(LoginPath, account.Login)
	app.Post("/account/logout", account.Logout)
	app.Get("/account/register", account.RegisterPage)
	app.Post("/account/register", account.Register)
	app.Get("/account/forgotpassword", account.ForgotPasswordPage)
	app.Post("/account/forgotpassword", account.ForgotPassword)
	app.Get("/account/verifyotp", account.VerifyOTPPage)
	app.Post("/account/verifyotp", account.VerifyOTP)
	app.Get("/account/resetpassword", account.ResetPasswordPage)
	app.Post("/account/resetpassword", account.ResetPassword)
	get("/account/changepassword", account.ChangePasswordPage)
	post("/account/changepassword", account.ChangePassword)

	// Dashboard
	dashboard := NewDashboardHandler(pages, deps.DashboardUC)
	get("/dashboard", dashboard.Index)

	// Empleados
	employees := NewEmployeeHandler(pages, deps.EmployeeUC, deps.DepartmentUC)
	get("/employee/employeelist", employees.List)
	get("/employee/employeelist.pdf", employees.RosterPDF)
	get("/employee/create", employees.CreatePage)
	post("/employee/create", employees.Create)
	get("/employee/edit/:id", employees.EditPage)
	post("/employee/edit/:id", employees.Edit)
	get("/employee/delete/:id", employees.DeletePage)
	post("/employee/delete/:id", employees.Delete)
	get("/employee/filter", employees.Filter)
	get("/employee/managerslist", employees.Managers)
	get("/employee/profile", employees.Profile)
	get("/employee/monthlyreport", employees.MonthlyReport)
	get("/employee/monthlyreport.pdf", employees.MonthlyReportPDF)

	// Departamentos
	departments := NewDepartmentHandler(pages, deps.DepartmentUC)
	get("/department", departments.List)
	get("/department/create", departments.CreatePage)
	post("/department/create", departments.Create)
	get("/department/edit/:id", departments.EditPage)
	post("/department/edit/:id", departments.Edit)
	get("/department/delete/:id", departments.DeletePage)
	post("/department/delete/:id", departments.Delete)

	// Permisos
	leaves := NewLeaveHandler(pages, deps.LeaveUC)
	get("/leave/apply", leaves.ApplyPage)
	post("/leave/apply", leaves.Apply)
	get("/leave/myleaves", leaves.MyLeaves)
	get("/leave/approvelist", leaves.ApproveList)
	get("/leave/employeeleavelist", leaves.TeamList)
	get("/leave/approval/:id", leaves.ApprovalPage)
	post("/leave/approval/:id", leaves.Approval)

	// Jefe
	manager := NewManagerHandler(pages, deps.ManagerUC)
	get("/manager/profile", manager.Profile)
	get("/manager/subordinates", manager.Subordinates)

	// Actividad
	activity := NewActivityHandler(pages, deps.ActivityUC)
	get("/activity", activity.Index)
	get("/activity/loginhistory/:userId", activity.LoginHistory)
	get("/activity/recentactivity", activity.Recent)
}

// ErrorHandler renderiza una página de error HTML en lugar de la respuesta de fiber.
func ErrorHandler(p *Pages) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "Ocurrió un error inesperado"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
			if code == fiber.StatusNotFound {
				msg = "Página no encontrada"
			}
		}
		if code >= fiber.StatusInternalServerError {
			p.log.Error().Err(err).Str("path", c.Path()).Str("request_id", requestID(c)).Msg("error no controlado")
		}
		if rerr := p.render(c, code, "error", "Error", &ViewData{Error: msg, Data: code}); rerr != nil {
			return c.Status(code).SendString(msg)
		}
		return nil
	}
}
