package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harlowe/docket/internal/logger"
	"github.com/harlowe/docket/internal/models"
	"github.com/harlowe/docket/internal/project"
	"github.com/harlowe/docket/internal/report"
	"gorm.io/gorm"
)

type handlers struct {
	db  *gorm.DB
	log *logger.Logger
}

// fail maps service errors onto HTTP responses. Validation problems come
// back with their message; persistence failures are logged server-side and
// surfaced as a generic 500.
func (h *handlers) fail(c *gin.Context, err error) {
	var vErr *project.ValidationError
	var fErr *project.InvalidFieldError
	switch {
	case errors.As(err, &vErr), errors.As(err, &fErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, project.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
	default:
		h.log.Error("persistence failure", "path", c.Request.URL.Path, "err", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *handlers) listProjects(c *gin.Context) {
	filters, err := filtersFromQuery(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	projects, err := project.List(h.db, filters)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": projects, "count": len(projects)})
}

func (h *handlers) getProject(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	p, err := project.Get(h.db, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

func (h *handlers) createProject(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be JSON"})
		return
	}
	opts, err := createOptsFromBody(body)
	if err != nil {
		h.fail(c, err)
		return
	}
	p, err := project.Create(h.db, opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": p})
}

func (h *handlers) updateProject(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be JSON"})
		return
	}
	updates, err := updateMapFromBody(body)
	if err != nil {
		h.fail(c, err)
		return
	}
	p, err := project.Update(h.db, id, updates)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

func (h *handlers) deleteProject(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := project.SoftDelete(h.db, id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}

func (h *handlers) appendNote(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	var body struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be JSON"})
		return
	}
	p, err := project.AppendNote(h.db, id, body.Note)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

func (h *handlers) autocomplete(c *gin.Context) {
	values, err := project.DistinctValues(h.db, c.Param("field"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": values})
}

// dashboardData bundles the four bucket queries behind the dashboard.
type dashboardData struct {
	Overdue           []models.Project
	DueThisWeek       []models.Project
	LongerDeadline    []models.Project
	RecentlyCompleted []models.Project
}

func (h *handlers) loadDashboard() (*dashboardData, error) {
	overdue, err := project.Overdue(h.db)
	if err != nil {
		return nil, err
	}
	dueThisWeek, err := project.DueThisWeek(h.db)
	if err != nil {
		return nil, err
	}
	longer, err := project.LongerDeadline(h.db)
	if err != nil {
		return nil, err
	}
	completed, err := project.RecentlyCompleted(h.db, 10)
	if err != nil {
		return nil, err
	}
	return &dashboardData{
		Overdue:           overdue,
		DueThisWeek:       dueThisWeek,
		LongerDeadline:    longer,
		RecentlyCompleted: completed,
	}, nil
}

func (h *handlers) dashboard(c *gin.Context) {
	data, err := h.loadDashboard()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"overdue":            data.Overdue,
		"due_this_week":      data.DueThisWeek,
		"longer_deadline":    data.LongerDeadline,
		"recently_completed": data.RecentlyCompleted,
	})
}

func (h *handlers) weeklyReport(c *gin.Context) {
	var fields []string
	if raw := c.Query("fields"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				fields = append(fields, f)
			}
		}
	}
	rep, err := report.WeeklyStatus(h.db, fields)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fields": rep.Fields, "labels": rep.Labels, "data": rep.Rows})
}

func (h *handlers) monthlyReport(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		h.fail(c, &project.ValidationError{Fields: []string{"year"}, Reason: "year must be an integer"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		h.fail(c, &project.ValidationError{Fields: []string{"month"}, Reason: "month must be an integer"})
		return
	}
	stats, err := report.Monthly(h.db, year, month)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}

func (h *handlers) exportCSV(c *gin.Context) {
	filters, err := filtersFromQuery(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	out, err := report.ExportCSV(h.db, filters)
	if err != nil {
		h.fail(c, err)
		return
	}
	filename := fmt.Sprintf("projects_%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(out))
}

// Pages.

func (h *handlers) dashboardPage(c *gin.Context) {
	data, err := h.loadDashboard()
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		h.log.Error("dashboard page", "err", err.Error())
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Overdue":           data.Overdue,
		"DueThisWeek":       data.DueThisWeek,
		"LongerDeadline":    data.LongerDeadline,
		"RecentlyCompleted": data.RecentlyCompleted,
	})
}

func (h *handlers) projectsPage(c *gin.Context) {
	filters, err := filtersFromQuery(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	projects, err := project.List(h.db, filters)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		h.log.Error("projects page", "err", err.Error())
		return
	}
	departments, err := project.DistinctValues(h.db, "department")
	if err != nil {
		h.log.Error("projects page departments", "err", err.Error())
	}
	attorneys, err := project.DistinctValues(h.db, "assigned_attorney")
	if err != nil {
		h.log.Error("projects page attorneys", "err", err.Error())
	}
	c.HTML(http.StatusOK, "projects.html", gin.H{
		"Projects":    projects,
		"Statuses":    models.AllStatuses,
		"Departments": departments,
		"Attorneys":   attorneys,
		"Search":      filters.Search,
	})
}

func (h *handlers) projectDetailPage(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	p, err := project.Get(h.db, id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			c.String(http.StatusNotFound, "project not found")
			return
		}
		c.String(http.StatusInternalServerError, "internal server error")
		h.log.Error("project detail page", "err", err.Error())
		return
	}
	c.HTML(http.StatusOK, "project_detail.html", gin.H{
		"Project": p,
		"Notes":   project.SplitNotes(p.Notes),
	})
}

func (h *handlers) reportsPage(c *gin.Context) {
	rep, err := report.WeeklyStatus(h.db, nil)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		h.log.Error("reports page", "err", err.Error())
		return
	}
	c.HTML(http.StatusOK, "reports.html", gin.H{
		"Weekly":       rep,
		"FieldOptions": report.FieldOptions(),
	})
}
