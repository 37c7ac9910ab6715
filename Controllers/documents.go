package Controllers

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"Crane/Models"
)

// UploadDir resolves the directory documents are stored in.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
}

type DocumentRow struct {
	Models.Document
	ProjectName  string `json:"project_name"`
	UploaderName string `json:"uploaded_by_name"`
}

func GetDocuments(c *fiber.Ctx) error {
	query := `
		SELECT d.*, COALESCE(p.name, '') as project_name, u.username as uploader_name
		FROM documents d
		LEFT JOIN projects p ON d.project_id = p.id
		JOIN users u ON d.uploaded_by = u.id
		WHERE d.deleted_at IS NULL
	`
	args := []interface{}{}
	if projectID := c.Query("project_id"); projectID != "" {
		query += " AND d.project_id = ?"
		args = append(args, projectID)
	}
	query += " ORDER BY d.created_at DESC"

	var documents []DocumentRow
	if err := Models.DB.Raw(query, args...).Scan(&documents).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve documents"})
	}
	return c.JSON(documents)
}

func UploadDocument(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file provided"})
	}

	name := c.FormValue("document_name")
	if name == "" {
		name = file.Filename
	}

	var projectID *uint
	if raw := c.FormValue("project_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
		}
		var project Models.Project
		if err := Models.DB.First(&project, id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		}
		pid := uint(id)
		projectID = &pid
	}

	var tags datatypes.JSON
	if raw := c.FormValue("tags"); raw != "" {
		var parsed []string
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tags must be a JSON array of strings"})
		}
		tags = datatypes.JSON(raw)
	}

	uploadDir := UploadDir()
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare upload directory"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	storedName := uuid.New().String() + ext
	storedPath := filepath.Join(uploadDir, storedName)
	if err := c.SaveFile(file, storedPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save file"})
	}

	var thumbnail string
	if imageExtensions[ext] {
		if img, err := imaging.Open(storedPath); err == nil {
			thumb := imaging.Thumbnail(img, 200, 200, imaging.Lanczos)
			thumbName := "thumb_" + storedName
			if err := imaging.Save(thumb, filepath.Join(uploadDir, thumbName)); err == nil {
				thumbnail = thumbName
			}
		}
	}

	user, _ := c.Locals("user").(Models.User)

	document := Models.Document{
		Name:        name,
		FilePath:    storedName,
		Description: c.FormValue("description"),
		ProjectID:   projectID,
		UploadedBy:  user.ID,
		Tags:        tags,
		Thumbnail:   thumbnail,
	}
	if err := Models.DB.Create(&document).Error; err != nil {
		os.Remove(storedPath)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record document"})
	}
	return c.Status(fiber.StatusCreated).JSON(document)
}

func DownloadDocument(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid document ID"})
	}

	var document Models.Document
	if err := Models.DB.First(&document, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Document not found"})
	}

	path := filepath.Join(UploadDir(), document.FilePath)
	if _, err := os.Stat(path); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "File missing from storage"})
	}
	return c.Download(path, document.Name+filepath.Ext(document.FilePath))
}

func DeleteDocument(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid document ID"})
	}

	var document Models.Document
	if err := Models.DB.First(&document, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Document not found"})
	}

	uploadDir := UploadDir()
	os.Remove(filepath.Join(uploadDir, document.FilePath))
	if document.Thumbnail != "" {
		os.Remove(filepath.Join(uploadDir, document.Thumbnail))
	}

	Models.DB.Delete(&document)
	return c.JSON(fiber.Map{"message": "Document deleted successfully"})
}
