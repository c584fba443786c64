package bucket_list_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"vdpcza/internal/repositories"
	"vdpcza/internal/services"
)

var Module = fx.Provide(
	provideBucketListRepo, provideBucketListService)

func provideBucketListRepo(db *gorm.DB) repositories.BucketListRepository {
	return repositories.NewBucketListRepository(db)
}

func provideBucketListService(repo repositories.BucketListRepository) services.BucketListServiceInterface {
	return services.NewBucketListService(repo)
}
