package product

import (
	"context"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"cms_back_end/internal/apperror"
	"cms_back_end/internal/models"
)

const (
	// Champ multipart portant les fichiers image
	ImagesField = "productImages"

	MaxFiles    = 6
	MaxFileSize = 6 << 20 // 6 MiB par fichier
)

// BlobStore est le stockage objet vu du handler
type BlobStore interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
}

// ProductTable est la table produits vue du handler
type ProductTable interface {
	Insert(ctx context.Context, p models.Product) error
	ScanAll(ctx context.Context) ([]models.Product, error)
}

type Handler struct {
	blobs BlobStore
	table ProductTable
}

func NewHandler(blobs BlobStore, table ProductTable) *Handler {
	return &Handler{blobs: blobs, table: table}
}

// =========================
// 🟢 CRÉER UN PRODUIT
// =========================
// POST /products : multipart avec productImages[1..6] + name, description,
// price, currency. Les uploads partent en parallèle, l'item n'est écrit
// qu'une fois tous les blobs en place.
func (h *Handler) UploadProduct(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.Error(apperror.BadRequest("Requête multipart invalide"))
		return
	}

	files := form.File[ImagesField]

	// 1️⃣ Limites vérifiées avant toute écriture externe
	if len(files) == 0 {
		c.Error(apperror.BadRequest("Au moins une image est requise"))
		return
	}
	if len(files) > MaxFiles {
		c.Error(apperror.BadRequest("Trop de fichiers (maximum 6)"))
		return
	}
	for _, fh := range files {
		if fh.Size > MaxFileSize {
			c.Error(apperror.TooLarge("Fichier trop volumineux (maximum 6 MiB)"))
			return
		}
	}

	name := c.PostForm("name")
	description := c.PostForm("description")
	priceText := c.PostForm("price")
	currency := c.PostForm("currency")

	if name == "" || description == "" || priceText == "" || currency == "" {
		c.Error(apperror.BadRequest("Les champs name, description, price et currency sont obligatoires"))
		return
	}

	// La table stocke le prix en numérique, comme le type N de DynamoDB
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Le champ price doit être numérique"))
		return
	}

	// 2️⃣ Générer l'identifiant du produit
	productID := uuid.New().String()

	// 3️⃣ Uploader chaque fichier en parallèle sous {productId}/{nomOriginal}.
	// Chaque goroutine écrit son propre index ; on attend toutes les
	// écritures, pas seulement le premier échec.
	g, gctx := errgroup.WithContext(c.Request.Context())

	urls := make([]string, len(files))
	uploadedKeys := make([]string, len(files))

	for i, fh := range files {
		i, fh := i, fh
		g.Go(func() error {
			f, err := fh.Open()
			if err != nil {
				return err
			}
			defer f.Close()

			key := productID + "/" + fh.Filename
			url, err := h.blobs.Upload(gctx, key, f, fh.Size, fh.Header.Get("Content-Type"))
			if err != nil {
				return err
			}

			urls[i] = url
			uploadedKeys[i] = key
			return nil
		})
	}

	// 4️⃣ Si un upload échoue, on supprime les blobs déjà écrits
	// au lieu de laisser des orphelins, puis on échoue la création.
	if err := g.Wait(); err != nil {
		for _, key := range uploadedKeys {
			if key == "" {
				continue
			}
			if rmErr := h.blobs.Remove(c.Request.Context(), key); rmErr != nil {
				log.Printf("⚠️ Nettoyage blob impossible (%s): %v", key, rmErr)
			}
		}
		c.Error(apperror.Upstream("Erreur upload vers le stockage objet", err))
		return
	}

	// 5️⃣ Écrire l'item produit, strictement après tous les uploads
	item := models.Product{
		ProductID:   productID,
		Name:        name,
		Description: description,
		Price:       price,
		Currency:    currency,
		ImageURLs:   urls,
		CreatedAt:   time.Now(),
	}

	if err := h.table.Insert(c.Request.Context(), item); err != nil {
		c.Error(apperror.Upstream("Erreur création produit", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product uploaded successfully",
	})
}

// =========================
// 🔵 LISTER LES PRODUITS
// =========================
// GET /products : scan complet de la table, projection avec uniquement
// la première image de chaque produit.
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.table.ScanAll(c.Request.Context())
	if err != nil {
		c.Error(apperror.Upstream("Erreur lecture produits", err))
		return
	}

	summaries := make([]models.ProductSummary, 0, len(products))
	for _, p := range products {
		image := ""
		if len(p.ImageURLs) > 0 {
			image = p.ImageURLs[0]
		}
		summaries = append(summaries, models.ProductSummary{
			ProductID:   p.ProductID,
			Name:        p.Name,
			Description: p.Description,
			Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
			Currency:    p.Currency,
			Image:       image,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": summaries,
	})
}
