package controllers

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"io"

	"github.com/pkg/errors"
)

var ErrBadCipherText = errors.New("cipher text is malformed")

// CryptoController encrypts and decrypts wallet private keys at rest with
// AES-256-GCM. Decrypted keys must not outlive the execution attempt they
// were decrypted for.
type CryptoController struct {
	secretKey []byte
}

func NewCryptoController(secretKey string) (*CryptoController, error) {
	if len(secretKey) != 32 {
		return nil, errors.New("encryption key must be 32 bytes")
	}

	return &CryptoController{
		secretKey: []byte(secretKey),
	}, nil
}

func (c *CryptoController) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.secretKey)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}

func (c *CryptoController) Encrypt(plainText string) (string, error) {
	gcm, err := c.gcm()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plainText), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *CryptoController) Decrypt(cipherText string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(cipherText)
	if err != nil {
		return "", err
	}

	gcm, err := c.gcm()
	if err != nil {
		return "", err
	}

	if len(raw) < gcm.NonceSize() {
		return "", ErrBadCipherText
	}

	plain, err := gcm.Open(nil, raw[:gcm.NonceSize()], raw[gcm.NonceSize():], nil)
	if err != nil {
		return "", errors.Wrap(err, "decrypt private key")
	}

	return string(plain), nil
}
