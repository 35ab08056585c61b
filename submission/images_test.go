package submission

import (
	"bytes"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadBatch(t *testing.T, files map[string][]byte, order []string) []*multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, name := range order {
		part, err := w.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write(files[name])
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["images"]
}

func TestReadImageBatchPreservesOrder(t *testing.T) {
	// minimal valid PNG and JPEG signatures
	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 16)...)
	jpeg := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 16)...)

	fhs := uploadBatch(t, map[string][]byte{"a.png": png, "b.jpg": jpeg}, []string{"a.png", "b.jpg"})

	urls, err := ReadImageBatch(fhs)
	require.NoError(t, err)
	require.Len(t, urls, 2)
	assert.True(t, strings.HasPrefix(urls[0], "data:image/png;base64,"), urls[0])
	assert.True(t, strings.HasPrefix(urls[1], "data:image/jpeg;base64,"), urls[1])
}

func TestReadImageBatchEmpty(t *testing.T) {
	urls, err := ReadImageBatch(nil)
	require.NoError(t, err)
	assert.Nil(t, urls)
}
