package services

import (
	"sort"
	"strings"

	"github.com/aledanee/blotch/models"

	"gorm.io/gorm"
)

// In-memory repository fakes mirroring the gorm-backed behavior: missing
// rows surface gorm.ErrRecordNotFound, unique collisions surface
// gorm.ErrDuplicatedKey.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	for id, u := range r.users {
		if id != user.ID && (u.Username == user.Username || u.Email == user.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetList(params models.UserListParams) ([]models.User, error) {
	var users []models.User
	for _, u := range r.users {
		if params.Email != "" && u.Email != params.Email {
			continue
		}
		if params.Username != "" && u.Username != params.Username {
			continue
		}
		if params.StartDate != nil && u.CreatedAt.Before(*params.StartDate) {
			continue
		}
		if params.EndDate != nil && u.CreatedAt.After(*params.EndDate) {
			continue
		}
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

type fakeTokenRepo struct {
	tokens map[uint]*models.RefreshToken
	nextID uint
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[uint]*models.RefreshToken{}, nextID: 1}
}

func (r *fakeTokenRepo) Create(token *models.RefreshToken) error {
	for _, t := range r.tokens {
		if t.Token == token.Token {
			return gorm.ErrDuplicatedKey
		}
	}
	token.ID = r.nextID
	r.nextID++
	r.tokens[token.ID] = token
	return nil
}

func (r *fakeTokenRepo) GetByToken(token string) (*models.RefreshToken, error) {
	for _, t := range r.tokens {
		if t.Token == token {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTokenRepo) Delete(id uint) error {
	delete(r.tokens, id)
	return nil
}

func (r *fakeTokenRepo) DeleteByUser(userID uint) error {
	for id, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, id)
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories    map[uint]*models.Category
	articleCounts map[uint]int64
	nextID        uint
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories:    map[uint]*models.Category{},
		articleCounts: map[uint]int64{},
		nextID:        1,
	}
}

func (r *fakeCategoryRepo) Create(category *models.Category) error {
	for _, c := range r.categories {
		if c.Name == category.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	category.ID = r.nextID
	r.nextID++
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) GetByID(id uint) (*models.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) GetByName(name string) (*models.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) GetAll() ([]models.Category, error) {
	var categories []models.Category
	for _, c := range r.categories {
		categories = append(categories, *c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (r *fakeCategoryRepo) Update(category *models.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(id uint) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) CountArticles(categoryID uint) (int64, error) {
	return r.articleCounts[categoryID], nil
}

type fakeArticleRepo struct {
	articles   map[uint]*models.Article
	likeCounts map[uint]int
	nextID     uint
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		articles:   map[uint]*models.Article{},
		likeCounts: map[uint]int{},
		nextID:     1,
	}
}

func (r *fakeArticleRepo) Create(article *models.Article) error {
	article.ID = r.nextID
	r.nextID++
	r.articles[article.ID] = article
	return nil
}

func (r *fakeArticleRepo) GetByID(id uint) (*models.Article, error) {
	if a, ok := r.articles[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeArticleRepo) GetList(params models.ArticleListParams) ([]models.Article, error) {
	var articles []models.Article
	for _, a := range r.articles {
		if params.CategoryID > 0 && a.CategoryID != params.CategoryID {
			continue
		}
		if params.AuthorID > 0 && a.AuthorID != params.AuthorID {
			continue
		}
		if params.IsPublished != nil && a.IsPublished != *params.IsPublished {
			continue
		}
		articles = append(articles, *a)
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i].ID < articles[j].ID })
	return articles, nil
}

func (r *fakeArticleRepo) Search(title string) ([]models.Article, error) {
	var articles []models.Article
	for _, a := range r.articles {
		if title == "" || strings.Contains(strings.ToLower(a.Title), strings.ToLower(title)) {
			articles = append(articles, *a)
		}
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i].ID < articles[j].ID })
	return articles, nil
}

func (r *fakeArticleRepo) GetPage(skip, limit int) ([]models.Article, error) {
	all, _ := r.GetList(models.ArticleListParams{})
	if skip >= len(all) {
		return nil, nil
	}
	all = all[skip:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeArticleRepo) Update(article *models.Article) error {
	r.articles[article.ID] = article
	return nil
}

func (r *fakeArticleRepo) Delete(id uint) error {
	delete(r.articles, id)
	return nil
}

func (r *fakeArticleRepo) MostLiked() (*models.Article, error) {
	var best *models.Article
	for _, a := range r.articles {
		count := r.likeCounts[a.ID]
		if count == 0 {
			continue
		}
		if best == nil || count > r.likeCounts[best.ID] ||
			(count == r.likeCounts[best.ID] && a.ID < best.ID) {
			best = a
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return best, nil
}

func (r *fakeArticleRepo) Latest(limit int) ([]models.Article, error) {
	var articles []models.Article
	for _, a := range r.articles {
		articles = append(articles, *a)
	}
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
	if limit < len(articles) {
		articles = articles[:limit]
	}
	return articles, nil
}

type fakeCommentRepo struct {
	comments map[uint]*models.Comment
	nextID   uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[uint]*models.Comment{}, nextID: 1}
}

func (r *fakeCommentRepo) Create(comment *models.Comment) error {
	comment.ID = r.nextID
	r.nextID++
	r.comments[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) GetByArticle(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	for _, c := range r.comments {
		if c.ArticleID == articleID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

type fakeLikeRepo struct {
	likes  map[uint]*models.Like
	nextID uint
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: map[uint]*models.Like{}, nextID: 1}
}

func (r *fakeLikeRepo) Toggle(articleID, userID uint) (*models.Like, bool, error) {
	for id, l := range r.likes {
		if l.ArticleID == articleID && l.UserID == userID {
			delete(r.likes, id)
			return l, true, nil
		}
	}
	like := &models.Like{ID: r.nextID, ArticleID: articleID, UserID: userID}
	r.nextID++
	r.likes[like.ID] = like
	return like, false, nil
}

func (r *fakeLikeRepo) GetByArticle(articleID uint) ([]models.Like, error) {
	var likes []models.Like
	for _, l := range r.likes {
		if l.ArticleID == articleID {
			likes = append(likes, *l)
		}
	}
	sort.Slice(likes, func(i, j int) bool { return likes[i].ID < likes[j].ID })
	return likes, nil
}
