package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"omoro/internal/catalog"
	"omoro/internal/domain"
	applog "omoro/internal/log"
	"omoro/internal/media"
	"omoro/internal/validate"
)

// FormField describes one input on an admin add/edit form.
type FormField struct {
	Name     string
	Label    string
	Type     string // text, textarea or select
	Required bool
	Options  []string
}

type fieldView struct {
	FormField
	Value string
}

// AdminRow is one line of an admin listing.
type AdminRow struct {
	ID       int64
	Title    string
	Subtitle string
	Category string
	Image    string
	Link     string
}

// KindAdmin serves list/add/edit/delete pages for one catalog kind.
type KindAdmin[T catalog.Record[T]] struct {
	Kind    string
	Label   string
	Fields  []FormField
	Open    func(client string) *catalog.Collection[T]
	Row     func(T) AdminRow
	Uploads *media.Uploader
}

func (k *KindAdmin[T]) base() string { return "/admin/" + k.Kind }

// Mount registers the kind's routes on an admin router.
func (k *KindAdmin[T]) Mount(r fiber.Router) {
	r.Get("/"+k.Kind, k.List)
	r.Get("/"+k.Kind+"/add", k.New)
	r.Post("/"+k.Kind, k.Create)
	r.Get("/"+k.Kind+"/edit/:id", k.Edit)
	r.Post("/"+k.Kind+"/edit/:id", k.Update)
	r.Get("/"+k.Kind+"/:id/delete", k.ConfirmDelete)
	r.Post("/"+k.Kind+"/:id/delete", k.Delete)
}

// GET /admin/<kind>?q=&category=
func (k *KindAdmin[T]) List(c *fiber.Ctx) error {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	category := strings.TrimSpace(c.Query("category"))
	rows := []AdminRow{}
	for _, r := range k.Open(clientID(c)).Resolve(c.UserContext()) {
		row := k.Row(r)
		if category != "" && row.Category != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(row.Title), q) &&
			!strings.Contains(strings.ToLower(row.Subtitle), q) {
			continue
		}
		rows = append(rows, row)
	}
	return render(c, "admin_list", fiber.Map{
		"Kind": k.Kind, "Label": k.Label, "Base": k.base(), "Rows": rows, "Count": len(rows),
		"Q": c.Query("q"), "Category": category, "Categories": k.categories(),
		"Saved": c.Query("saved") == "1", "Deleted": c.Query("deleted") == "1",
	})
}

func (k *KindAdmin[T]) categories() []string {
	for _, f := range k.Fields {
		if f.Name == "category" {
			return f.Options
		}
	}
	return nil
}

func (k *KindAdmin[T]) formPage(c *fiber.Ctx, action string, values map[string]string, images []string, editing bool, errMsg string) error {
	views := make([]fieldView, 0, len(k.Fields))
	for _, f := range k.Fields {
		v := values[f.Name]
		if f.Type == "select" && v != "" && !slices.Contains(f.Options, v) {
			f.Options = append([]string{v}, f.Options...)
		}
		views = append(views, fieldView{FormField: f, Value: v})
	}
	return render(c, "admin_form", fiber.Map{
		"Kind": k.Kind, "Label": k.Label, "Base": k.base(), "Action": action,
		"Fields": views, "Images": images, "ImageList": strings.Join(images, ","),
		"Editing": editing, "Err": errMsg,
	})
}

// GET /admin/<kind>/add
func (k *KindAdmin[T]) New(c *fiber.Ctx) error {
	return k.formPage(c, k.base(), map[string]string{}, nil, false, "")
}

// readFields collects declared fields from the form and checks required ones.
// current is the existing value set when editing, nil when creating.
func (k *KindAdmin[T]) readFields(c *fiber.Ctx, current map[string]string) (map[string]string, string) {
	out := make(map[string]string, len(k.Fields))
	for _, f := range k.Fields {
		v := validate.Optional(c.FormValue(f.Name), 4000)
		if f.Required && v == "" {
			applog.Security(c, "validation.fail", map[string]any{"field": f.Name, "kind": k.Kind})
			return out, f.Label + " is required."
		}
		if f.Type == "select" && v != "" && !slices.Contains(f.Options, v) && (current == nil || current[f.Name] != v) {
			applog.Security(c, "validation.fail", map[string]any{"field": f.Name, "kind": k.Kind})
			return out, "Choose a valid " + strings.ToLower(f.Label) + "."
		}
		out[f.Name] = v
	}
	return out, ""
}

// uploads stores every file posted as "images" and returns their URLs.
func (k *KindAdmin[T]) uploads(c *fiber.Ctx) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil || k.Uploads == nil {
		return nil, nil
	}
	var out []string
	for _, fh := range form.File["images"] {
		if fh.Size == 0 {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			return out, err
		}
		url, err := k.Uploads.Save(fh.Filename, f)
		f.Close()
		if err != nil {
			return out, err
		}
		out = append(out, url)
	}
	return out, nil
}

// POST /admin/<kind>
func (k *KindAdmin[T]) Create(c *fiber.Ctx) error {
	fields, msg := k.readFields(c, nil)
	images := domain.SplitImages(c.FormValue("imageUrls"))
	if msg != "" {
		c.Status(fiber.StatusBadRequest)
		return k.formPage(c, k.base(), fields, images, false, msg)
	}
	uploaded, err := k.uploads(c)
	if err != nil {
		applog.Error(c, "admin."+k.Kind+".upload.fail", err, nil)
		c.Status(fiber.StatusBadRequest)
		return k.formPage(c, k.base(), fields, images, false, "Images must be PNG or JPEG files.")
	}
	images = append(images, uploaded...)

	rec, err := k.Open(clientID(c)).Create(c.UserContext(), fields, images)
	if err != nil {
		applog.Error(c, "admin."+k.Kind+".create.fail", err, nil)
		c.Status(fiber.StatusInternalServerError)
		return k.formPage(c, k.base(), fields, images, false, "Could not save. Please try again.")
	}
	applog.Audit(c, "admin."+k.Kind+".create", map[string]any{"id": rec.RecordID(), "title": k.Row(rec).Title})
	return c.Redirect(k.base() + "?saved=1")
}

func (k *KindAdmin[T]) load(c *fiber.Ctx) (T, bool) {
	var zero T
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id", "kind": k.Kind})
		return zero, false
	}
	return k.Open(clientID(c)).Get(c.UserContext(), id)
}

// GET /admin/<kind>/edit/:id
func (k *KindAdmin[T]) Edit(c *fiber.Ctx) error {
	rec, ok := k.load(c)
	if !ok {
		return notFound(c, k.Label+" not found", k.base())
	}
	values, images := recordValues(rec)
	return k.formPage(c, fmt.Sprintf("%s/edit/%d", k.base(), rec.RecordID()), values, images, true, "")
}

// POST /admin/<kind>/edit/:id
func (k *KindAdmin[T]) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id", "kind": k.Kind})
		return notFound(c, k.Label+" not found", k.base())
	}
	col := k.Open(clientID(c))
	action := fmt.Sprintf("%s/edit/%d", k.base(), id)

	var current map[string]string
	if rec, found := col.Get(c.UserContext(), id); found {
		current, _ = recordValues(rec)
	}
	fields, msg := k.readFields(c, current)
	images := domain.SplitImages(c.FormValue("imageUrls"))
	if msg != "" {
		c.Status(fiber.StatusBadRequest)
		return k.formPage(c, action, fields, images, true, msg)
	}
	uploaded, err := k.uploads(c)
	if err != nil {
		applog.Error(c, "admin."+k.Kind+".upload.fail", err, map[string]any{"id": id})
		c.Status(fiber.StatusBadRequest)
		return k.formPage(c, action, fields, images, true, "Images must be PNG or JPEG files.")
	}
	fields["images"] = strings.Join(append(images, uploaded...), ",")

	if _, err := col.Update(c.UserContext(), id, fields); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			applog.Info(c, "admin."+k.Kind+".update.missing", map[string]any{"id": id})
			return notFound(c, k.Label+" not found", k.base())
		}
		applog.Error(c, "admin."+k.Kind+".update.fail", err, map[string]any{"id": id})
		c.Status(fiber.StatusInternalServerError)
		return k.formPage(c, action, fields, images, true, "Could not save changes. Please try again.")
	}
	applog.Audit(c, "admin."+k.Kind+".update", map[string]any{"id": id})
	return c.Redirect(k.base() + "?saved=1")
}

// GET /admin/<kind>/:id/delete
func (k *KindAdmin[T]) ConfirmDelete(c *fiber.Ctx) error {
	rec, ok := k.load(c)
	if !ok {
		return notFound(c, k.Label+" not found", k.base())
	}
	return render(c, "admin_confirm", fiber.Map{
		"Label": k.Label, "Base": k.base(), "Row": k.Row(rec),
		"Action": fmt.Sprintf("%s/%d/delete", k.base(), rec.RecordID()),
	})
}

// POST /admin/<kind>/:id/delete
func (k *KindAdmin[T]) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id", "kind": k.Kind})
		return c.Status(fiber.StatusBadRequest).SendString("invalid id")
	}
	if err := k.Open(clientID(c)).Delete(c.UserContext(), id); err != nil {
		applog.Error(c, "admin."+k.Kind+".delete.fail", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
			"Message": "Could not delete. Please try again.", "Back": k.base(),
		})
	}
	applog.Audit(c, "admin."+k.Kind+".delete", map[string]any{"id": id})
	return c.Redirect(k.base() + "?deleted=1")
}

// recordValues flattens a record's JSON form into string field values plus its image list.
func recordValues(rec any) (map[string]string, []string) {
	b, _ := json.Marshal(rec)
	var raw map[string]any
	_ = json.Unmarshal(b, &raw)
	out := make(map[string]string, len(raw))
	var images []string
	for k, v := range raw {
		switch t := v.(type) {
		case string:
			out[k] = t
		case []any:
			for _, it := range t {
				if s, ok := it.(string); ok {
					images = append(images, s)
				}
			}
		case float64:
			out[k] = fmt.Sprintf("%.0f", t)
		}
	}
	if len(images) == 0 {
		for _, key := range []string{"image", "src"} {
			if s := out[key]; s != "" {
				images = []string{s}
				break
			}
		}
	}
	return out, images
}
