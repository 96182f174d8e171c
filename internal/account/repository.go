package account

import (
	"gorm.io/gorm"

	"coauthor/article-service/internal/model/user"
)

// UserRepository 用户仓储层
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return &u, err
}

func (r *UserRepository) GetByEmail(email string) (*user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", email).First(&u).Error
	return &u, err
}

// FindByUsernameOrEmail 精确匹配查找（大小写敏感），用于注册查重
func (r *UserRepository) FindByUsernameOrEmail(username, email string) (*user.User, error) {
	var u user.User
	err := r.db.Where("username = ? OR email = ?", username, email).First(&u).Error
	return &u, err
}

// Search 用户名大小写不敏感子串匹配
// 按存储顺序（id 升序）返回前 limit 条，excludeID 非0时排除该用户
func (r *UserRepository) Search(query string, excludeID uint, limit int) ([]user.User, error) {
	var users []user.User
	q := r.db.Model(&user.User{}).
		Where("username ILIKE ?", "%"+query+"%")
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Order("id ASC").Limit(limit).Find(&users).Error
	return users, err
}

// GetByIDs 批量查询，用于读取时联结用户名
func (r *UserRepository) GetByIDs(ids []uint) ([]user.User, error) {
	var users []user.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}
