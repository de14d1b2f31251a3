/**
* Name: 			profile_handler.go
* Description: 		Gin 프레임워크의 HTTP 핸들러
* Workflow: 		프로필 생성, 프로필 조회, 프로필 매칭, 이미지 제공
 */
package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"galatea-ai-backend/internal/images"
	"galatea-ai-backend/internal/llm"
	"galatea-ai-backend/internal/models"
	"galatea-ai-backend/internal/storage"
	"galatea-ai-backend/internal/traits"

	"github.com/gin-gonic/gin"
)

const welcomeMessage = "Welcome to the Profile Image Generator API powered by Replicate and Groq!"

// ProfileLLM is the remote model used to write and compare profiles.
type ProfileLLM interface {
	GenerateProfile(ctx context.Context, description string) (string, error)
	CheckMatch(ctx context.Context, userProfile, girlProfile string) (bool, error)
}

// ProfileStore persists generated profiles.
type ProfileStore interface {
	Insert(ctx context.Context, prompt, imageURL, profile string) (int64, error)
	GetByID(ctx context.Context, id int64) (models.GeneratedProfile, error)
	GetAll(ctx context.Context) ([]models.GeneratedProfile, error)
}

type ErrorResponse struct {
	Detail string `json:"detail" example:"Model not found"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Welcome to the Profile Image Generator API powered by Replicate and Groq!"`
}

type Handler struct {
	composer *traits.Composer
	images   *images.Directory
	llm      ProfileLLM
	store    ProfileStore
}

func New(composer *traits.Composer, dir *images.Directory, model ProfileLLM, store ProfileStore) *Handler {
	return &Handler{
		composer: composer,
		images:   dir,
		llm:      model,
		store:    store,
	}
}

func abortWithDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}

// Root godoc
// @Summary      API 상태 확인
// @Description  고정된 환영 메시지를 반환합니다.
// @Tags         System
// @Produce      json
// @Success      200 {object} handler.MessageResponse
// @Router       / [get]
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: welcomeMessage})
}

// GenerateProfileImage godoc
// @Summary      프로필 생성 (Generate profile image)
// @Description  무작위 외형 설명을 만들고, 이미지 폴더에서 PNG 하나를 고른 뒤, LLM으로 이름과 소개글을 생성해 저장합니다.
// @Description  LLM 호출이 실패하면 아무것도 저장하지 않고 502를 반환합니다.
// @Tags         Profile
// @Produce      json
// @Success      200 {object} models.GeneratedProfile
// @Failure      500 {object} handler.ErrorResponse "이미지 폴더 없음/비어 있음, DB 오류"
// @Failure      502 {object} handler.ErrorResponse "LLM 호출 실패"
// @Router       /generate-profile-image [post]
func (h *Handler) GenerateProfileImage(c *gin.Context) {
	prompt := h.composer.Compose()

	imageName, err := h.images.Pick()
	if err != nil {
		switch {
		case errors.Is(err, images.ErrDirMissing):
			abortWithDetail(c, http.StatusInternalServerError, "Images folder does not exist")
		case errors.Is(err, images.ErrDirEmpty):
			abortWithDetail(c, http.StatusInternalServerError, "No images found in the folder")
		default:
			log.Printf("[ERROR] GenerateProfileImage(): failed to list images: %v", err)
			abortWithDetail(c, http.StatusInternalServerError, "Failed to read images folder")
		}
		return
	}
	imageURL := images.URL(imageName)

	profile, err := h.llm.GenerateProfile(c.Request.Context(), prompt)
	if err != nil {
		log.Printf("[ERROR] GenerateProfileImage(): %v", err)
		if errors.Is(err, llm.ErrUpstream) {
			abortWithDetail(c, http.StatusBadGateway, err.Error())
			return
		}
		abortWithDetail(c, http.StatusInternalServerError, err.Error())
		return
	}

	id, err := h.store.Insert(c.Request.Context(), prompt, imageURL, profile)
	if err != nil {
		log.Printf("[ERROR] GenerateProfileImage(): failed to save model (database error): %v", err)
		abortWithDetail(c, http.StatusInternalServerError, "Failed to save model (database error)")
		return
	}

	log.Printf("GenerateProfileImage(): saved model %d with image %s", id, imageURL)
	c.JSON(http.StatusOK, models.GeneratedProfile{
		ID:       id,
		Prompt:   prompt,
		ImageURL: imageURL,
		Profile:  profile,
	})
}

// GetModel godoc
// @Summary      프로필 단건 조회
// @Description  ID로 저장된 프로필을 조회합니다.
// @Tags         Profile
// @Produce      json
// @Param        id   path      int  true  "프로필 ID"
// @Success      200 {object} models.GeneratedProfile
// @Failure      404 {object} handler.ErrorResponse "Model not found"
// @Failure      422 {object} handler.ErrorResponse "정수가 아닌 ID"
// @Failure      500 {object} handler.ErrorResponse "DB 오류"
// @Router       /models/{id} [get]
func (h *Handler) GetModel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithDetail(c, http.StatusUnprocessableEntity, "id must be an integer")
		return
	}

	profile, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			abortWithDetail(c, http.StatusNotFound, "Model not found")
			return
		}
		log.Printf("[ERROR] GetModel(): GetByID(%d) failed: %v", id, err)
		abortWithDetail(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetModels godoc
// @Summary      프로필 목록 조회
// @Description  저장된 모든 프로필을 반환합니다. 순서는 보장되지 않습니다.
// @Tags         Profile
// @Produce      json
// @Success      200 {array} models.GeneratedProfile
// @Failure      500 {object} handler.ErrorResponse "DB 오류"
// @Router       /models [get]
func (h *Handler) GetModels(c *gin.Context) {
	profiles, err := h.store.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] GetModels(): GetAll failed: %v", err)
		abortWithDetail(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// CheckProfileMatch godoc
// @Summary      프로필 매칭 확인
// @Description  두 프로필이 어울리는지 LLM에 판단을 요청합니다. 응답에 "true"가 포함되어 있으면 매칭으로 봅니다.
// @Tags         Profile
// @Produce      json
// @Param        user_profile query string true "사용자 프로필"
// @Param        girl_profile query string true "상대 프로필"
// @Success      200 {object} models.MatchResult
// @Failure      422 {object} handler.ErrorResponse "쿼리 파라미터 누락"
// @Failure      502 {object} handler.ErrorResponse "LLM 호출 실패"
// @Router       /check-profile-match [post]
func (h *Handler) CheckProfileMatch(c *gin.Context) {
	userProfile, ok := c.GetQuery("user_profile")
	if !ok {
		abortWithDetail(c, http.StatusUnprocessableEntity, "user_profile is required")
		return
	}
	girlProfile, ok := c.GetQuery("girl_profile")
	if !ok {
		abortWithDetail(c, http.StatusUnprocessableEntity, "girl_profile is required")
		return
	}

	matched, err := h.llm.CheckMatch(c.Request.Context(), userProfile, girlProfile)
	if err != nil {
		log.Printf("[ERROR] CheckProfileMatch(): %v", err)
		if errors.Is(err, llm.ErrUpstream) {
			abortWithDetail(c, http.StatusBadGateway, err.Error())
			return
		}
		abortWithDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, models.MatchResult{Matched: matched})
}

// GetImage godoc
// @Summary      프로필 이미지
// @Description  이미지 폴더에서 파일을 반환합니다. 폴더 밖의 경로는 404로 처리합니다.
// @Tags         Image
// @Produce      image/png
// @Param        image_name path string true "이미지 파일명 (예: a0.png)"
// @Success      200 {file} file "이미지 바이너리 데이터"
// @Failure      404 {object} handler.ErrorResponse "Image not found"
// @Router       /images/{image_name} [get]
func (h *Handler) GetImage(c *gin.Context) {
	path, err := h.images.Resolve(c.Param("image_name"))
	if err != nil {
		abortWithDetail(c, http.StatusNotFound, "Image not found")
		return
	}
	c.File(path)
}
