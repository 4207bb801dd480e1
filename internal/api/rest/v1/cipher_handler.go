package v1

import (
	"encoding/hex"
	"fmt"
	"net/http"

	"cipher_stream_service/internal/app"
	"cipher_stream_service/internal/domain/ciphers"

	"github.com/gin-gonic/gin"
)

// CipherHandler defines the interface for handling cipher operations
type CipherHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type cipherHandler struct {
	cipherService *app.CipherService
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(cipherService *app.CipherService) CipherHandler {
	return &cipherHandler{cipherService: cipherService}
}

// Encrypt handles the POST request for a whole-message encryption pass
// @Summary Encrypt a message
// @Description Encrypt a hex-encoded message with the selected cipher and mode. Block modes apply PKCS7 padding.
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Encryption parameters"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /ciphertexts [post]
func (handler *cipherHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	cipher, mode, err := buildDescriptors(request.Cipher, request.Mode, request.Key, request.IV)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	plaintext, err := hex.DecodeString(request.Plaintext)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid plaintext: %v", err)})
		return
	}

	ciphertext, err := handler.cipherService.Encrypt(ctx, cipher, mode, plaintext)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error encrypting: %v", err)})
		return
	}
	ctx.JSON(http.StatusOK, EncryptResponse{Ciphertext: hex.EncodeToString(ciphertext)})
}

// Decrypt handles the POST request for a whole-message decryption pass
// @Summary Decrypt a message
// @Description Decrypt a hex-encoded ciphertext with the selected cipher and mode. Block modes strip PKCS7 padding.
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Decryption parameters"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /plaintexts [post]
func (handler *cipherHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	cipher, mode, err := buildDescriptors(request.Cipher, request.Mode, request.Key, request.IV)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	ciphertext, err := hex.DecodeString(request.Ciphertext)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid ciphertext: %v", err)})
		return
	}

	plaintext, err := handler.cipherService.Decrypt(ctx, cipher, mode, ciphertext)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error decrypting: %v", err)})
		return
	}
	ctx.JSON(http.StatusOK, DecryptResponse{Plaintext: hex.EncodeToString(plaintext)})
}

func buildDescriptors(cipherName, modeName, keyHex, ivHex string) (ciphers.AlgorithmDescriptor, ciphers.ModeDescriptor, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return ciphers.AlgorithmDescriptor{}, ciphers.ModeDescriptor{}, fmt.Errorf("invalid key: %v", err)
	}
	ivOrNonce, err := hex.DecodeString(ivHex)
	if err != nil {
		return ciphers.AlgorithmDescriptor{}, ciphers.ModeDescriptor{}, fmt.Errorf("invalid iv: %v", err)
	}

	cipher, err := ciphers.NewCipherByName(cipherName, key)
	if err != nil {
		return ciphers.AlgorithmDescriptor{}, ciphers.ModeDescriptor{}, err
	}
	mode, err := ciphers.NewModeByName(modeName, ivOrNonce)
	if err != nil {
		return ciphers.AlgorithmDescriptor{}, ciphers.ModeDescriptor{}, err
	}
	return cipher, mode, nil
}
