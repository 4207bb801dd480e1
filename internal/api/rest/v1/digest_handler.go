package v1

import (
	"encoding/hex"
	"fmt"
	"net/http"

	"cipher_stream_service/internal/app"
	"cipher_stream_service/internal/domain/hashes"

	"github.com/gin-gonic/gin"
)

// DigestHandler defines the interface for handling digest and capability
// operations
type DigestHandler interface {
	Digest(ctx *gin.Context)
	ListAlgorithms(ctx *gin.Context)
}

type digestHandler struct {
	digestService *app.DigestService
	cipherService *app.CipherService
}

// NewDigestHandler creates a new DigestHandler
func NewDigestHandler(digestService *app.DigestService, cipherService *app.CipherService) DigestHandler {
	return &digestHandler{digestService: digestService, cipherService: cipherService}
}

// Digest handles the POST request for a whole-message hashing pass
// @Summary Hash a message
// @Description Hash a hex-encoded message with the selected digest algorithm.
// @Tags Digest
// @Accept json
// @Produce json
// @Param requestBody body DigestRequest true "Digest parameters"
// @Success 200 {object} DigestResponse
// @Failure 400 {object} ErrorResponse
// @Router /digests [post]
func (handler *digestHandler) Digest(ctx *gin.Context) {
	var request DigestRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	algorithm, ok := lookupDigest(request.Algorithm)
	if !ok || !handler.digestService.IsSupported(algorithm.Name) {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("unsupported digest algorithm %q", request.Algorithm)})
		return
	}
	data, err := hex.DecodeString(request.Data)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid data: %v", err)})
		return
	}

	sum, err := handler.digestService.Digest(ctx, algorithm, data)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error hashing: %v", err)})
		return
	}
	ctx.JSON(http.StatusOK, DigestResponse{Digest: hex.EncodeToString(sum)})
}

// ListAlgorithms handles the GET request for engine capabilities
// @Summary List supported algorithms
// @Description List the cipher/mode combinations and digest algorithms usable on this engine build.
// @Tags Digest
// @Produce json
// @Success 200 {object} AlgorithmsResponse
// @Router /algorithms [get]
func (handler *digestHandler) ListAlgorithms(ctx *gin.Context) {
	var response AlgorithmsResponse
	for _, c := range handler.cipherService.SupportedCombinations() {
		response.Ciphers = append(response.Ciphers, CombinationResponse{
			Cipher:  c.Cipher,
			KeySize: c.KeySize,
			Mode:    c.Mode,
		})
	}
	for _, alg := range handler.digestService.SupportedDigests() {
		response.Digests = append(response.Digests, alg.Name)
	}
	ctx.JSON(http.StatusOK, response)
}

func lookupDigest(name string) (hashes.Algorithm, bool) {
	for _, alg := range []hashes.Algorithm{
		hashes.MD5, hashes.SHA1, hashes.SHA224, hashes.SHA256, hashes.SHA384,
		hashes.SHA512, hashes.SHA3x256, hashes.SHA3x512, hashes.BLAKE2b256,
		hashes.BLAKE2b512,
	} {
		if alg.Name == name {
			return alg, true
		}
	}
	return hashes.Algorithm{}, false
}
