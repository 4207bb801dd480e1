package v1

import (
	"cipher_stream_service/internal/app"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, cipherService *app.CipherService, digestService *app.DigestService) {
	v1 := r.Group(BasePath)

	cipherHandler := NewCipherHandler(cipherService)
	v1.POST("/ciphertexts", cipherHandler.Encrypt)
	v1.POST("/plaintexts", cipherHandler.Decrypt)

	digestHandler := NewDigestHandler(digestService, cipherService)
	v1.POST("/digests", digestHandler.Digest)
	v1.GET("/algorithms", digestHandler.ListAlgorithms)
}
