package models

import (
	"gorm.io/gorm"
)

// GetResourceByName retrieves a resource from the database by its name
func GetResourceByName(name string, db *gorm.DB) (*Resource, error) {
	resource := &Resource{}
	if err := db.Where("name = ?", name).First(resource).Error; err != nil {
		return nil, err
	}
	return resource, nil
}

// GetResourceByUUID retrieves a resource from the database by its uuid
func GetResourceByUUID(id string, db *gorm.DB) (*Resource, error) {
	resource := &Resource{}
	if err := db.Where("uuid = ?", id).First(resource).Error; err != nil {
		return nil, err
	}
	return resource, nil
}

func GetNodeByURL(url string, db *gorm.DB) (*ResourceNode, error) {
	node := &ResourceNode{}
	if err := db.Where("url = ?", url).First(node).Error; err != nil {
		return nil, err
	}
	return node, nil
}

func GetUserByEmail(email string, db *gorm.DB) (*User, error) {
	user := &User{}
	if err := db.Where("email = ?", email).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
