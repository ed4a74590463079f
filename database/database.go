package database

import (
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type Database struct {
	db           *gorm.DB
	postRepo     *PostRepo
	pageRepo     *PageRepo
	userRepo     *UserRepo
	categoryRepo *CategoryRepo
	tagRepo      *TagRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:           db,
		postRepo:     NewPostRepo(db),
		pageRepo:     NewPageRepo(db),
		userRepo:     NewUserRepo(db),
		categoryRepo: NewCategoryRepo(db),
		tagRepo:      NewTagRepo(db),
	}
}

// UseReplicas routes reads to the given replica dialectors; writes stay on the primary.
// Calling it with no replicas is a no-op.
func UseReplicas(db *gorm.DB, replicas ...gorm.Dialector) error {
	if len(replicas) == 0 {
		return nil
	}
	return db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	}))
}

// Accessor methods for each repository

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) PageRepo() *PageRepo {
	return d.pageRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

// Ping checks that the primary connection is usable
func (d Database) Ping() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
