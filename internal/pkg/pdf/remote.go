package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RemoteConverter 调用独立部署的 HTML 转 PDF 服务。
// 服务端接收 text/html 请求体，返回 application/pdf。
type RemoteConverter struct {
	endpoint string
	client   *http.Client
}

func NewRemoteConverter(endpoint string) *RemoteConverter {
	return &RemoteConverter{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ConvertHTMLToPDF 将HTML内容转换为PDF。
// opts 目前被远程服务忽略，保留签名兼容。
func (c *RemoteConverter) ConvertHTMLToPDF(ctx context.Context, html string, opts ...Option) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint, bytes.NewReader([]byte(html)))
	if err != nil {
		return nil, fmt.Errorf("构建转换请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "text/html; charset=utf-8")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("调用转换服务失败: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("转换服务返回 %d: %s", resp.StatusCode, string(body))
	}
	return io.ReadAll(resp.Body)
}
