//go:build !android

package utils

// EnsureStorageDir 确保偏好设置存储目录存在（非 Android 平台的空实现）
// gdata 在桌面和浏览器平台上会自行创建存储位置
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath 获取存储路径（非 Android 平台返回空字符串）
func GetStoragePath() string {
	return ""
}
